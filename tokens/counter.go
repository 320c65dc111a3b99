package tokens

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// cjkCharsPerToken is the ratio applied to CJK Unified Ideographs,
// which tokenize much denser than Latin text (~2 chars per token).
const cjkCharsPerToken = 2.0

// Counter estimates token counts for text.
//
// Whatever implementation is chosen, the same Counter must be used everywhere
// a token count is cached (history log, file store, payload builder), or the
// cached counts and the budget accounting drift apart.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	// Count("") is always 0.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// EstimatingCounter uses a character-to-token ratio for estimation.
// Default ratio is ~4 chars per token for non-CJK text and ~2 chars per
// token for CJK Unified Ideographs (U+4E00–U+9FFF).
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token for non-CJK text.
	// Default is 4, which works well for English.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token counter with default settings.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// NewEstimatingCounterWithRatio creates a token counter with a custom ratio
// for non-CJK text. If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{
		CharsPerToken: charsPerToken,
	}
}

// Count estimates the number of tokens in the given text. Counting is by
// rune, not byte: CJK ideographs are weighted at ~2 chars/token and
// everything else at CharsPerToken. Precision is roughly ±20% for mixed
// content, which is sufficient for threshold-based budgeting.
func (c *EstimatingCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	var cjk, other int
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			cjk++
		} else {
			other++
		}
	}

	estimate := float64(cjk)/cjkCharsPerToken + float64(other)/c.CharsPerToken

	// Round to nearest integer
	return int(estimate + 0.5)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// EstimateTokens is a convenience function using the default estimator.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
