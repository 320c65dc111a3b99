// Package tokens provides token counting for LLM context budgeting.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text, and 2 characters per token for
// CJK ideographs. This provides fast estimation without requiring a
// model-specific tokenizer.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// Every component that caches token counts (history, filectx, payload) must
// share a single Counter; mixing counters invalidates cached counts.
//
// # Model Limits
//
// Get context window sizes for common models when sizing a budget:
//
//	limit := tokens.GetModelLimit("claude-opus-4")  // 200000
//	limit := tokens.GetModelLimit("unknown")        // 100000 (default)
//
// See ModelLimits for the complete map of model context windows.
package tokens
