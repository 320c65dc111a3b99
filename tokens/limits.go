package tokens

// ModelLimits contains context window sizes for common models.
var ModelLimits = map[string]int{
	// Claude 4 models
	"claude-opus-4":   200000,
	"claude-sonnet-4": 200000,

	// Claude 3.5 models
	"claude-3.5-sonnet": 200000,
	"claude-3.5-haiku":  200000,

	// DeepSeek models
	"deepseek-chat":     64000,
	"deepseek-reasoner": 64000,

	// OpenAI models
	"gpt-4o":      128000,
	"gpt-4o-mini": 128000,

	// Default fallback
	"default": 100000,
}

// GetModelLimit returns the context window for a model, or a default if
// the model is unknown. Useful for picking a session's MaxTokens.
func GetModelLimit(model string) int {
	if limit, ok := ModelLimits[model]; ok {
		return limit
	}
	return ModelLimits["default"]
}
