package session

import (
	"errors"

	"github.com/randalmurphal/contextkit/filectx"
	"github.com/randalmurphal/contextkit/payload"
	"github.com/randalmurphal/contextkit/tokens"
	"github.com/randalmurphal/contextkit/usage"
)

// Sentinel errors for configuration validation.
var (
	// ErrMaxTokens indicates a missing or non-positive token budget.
	ErrMaxTokens = errors.New("max tokens must be positive")

	// ErrMaxFileContexts indicates a negative file-context capacity.
	ErrMaxFileContexts = errors.New("max file contexts must be positive")

	// ErrFileTokenCap indicates a negative per-file token cap.
	ErrFileTokenCap = errors.New("file token cap must be positive")

	// ErrFileBudgetFraction indicates a file budget fraction outside (0, 1].
	ErrFileBudgetFraction = errors.New("file budget fraction must be in (0, 1]")

	// ErrThresholds indicates usage thresholds outside (0, 1) or a warn
	// threshold at or above the critical threshold.
	ErrThresholds = errors.New("thresholds must satisfy 0 < warn < critical < 1")

	// ErrSystemPromptTooLarge indicates the system prompt alone exceeds
	// the token budget. The system prompt is never truncated, so such a
	// configuration could never produce a payload within budget.
	ErrSystemPromptTooLarge = errors.New("system prompt exceeds max tokens")
)

// Config holds the static configuration of a session.
// Zero values use the documented defaults; MaxTokens is required.
type Config struct {
	// SystemPrompt is emitted as the first payload entry of every request.
	// It is never dropped or truncated, so its token cost must stay under
	// MaxTokens.
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt" toml:"system_prompt"`

	// MaxTokens is the hard token budget for a built payload, typically
	// the target model's context window (see tokens.GetModelLimit).
	// Required; there is no default.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`

	// MaxFileContexts is how many files may be pinned at once.
	// Default: 5.
	MaxFileContexts int `json:"max_file_contexts" yaml:"max_file_contexts" toml:"max_file_contexts"`

	// FileTokenCap rejects any single pinned file estimating above this
	// many tokens. Default: MaxTokens / 10.
	FileTokenCap int `json:"file_token_cap" yaml:"file_token_cap" toml:"file_token_cap"`

	// FileBudgetFraction is the share of MaxTokens reserved for pinned
	// files during payload assembly. Default: 0.10.
	FileBudgetFraction float64 `json:"file_budget_fraction" yaml:"file_budget_fraction" toml:"file_budget_fraction"`

	// WarnThreshold and CriticalThreshold classify usage ratios into
	// tiers. Defaults: 0.8 and 0.9.
	WarnThreshold     float64 `json:"warn_threshold" yaml:"warn_threshold" toml:"warn_threshold"`
	CriticalThreshold float64 `json:"critical_threshold" yaml:"critical_threshold" toml:"critical_threshold"`

	// ClipOversizedFiles clips a file over FileTokenCap to fit (keeping
	// the start) instead of rejecting it. Default: off, matching the
	// store's reject-and-report behavior.
	ClipOversizedFiles bool `json:"clip_oversized_files" yaml:"clip_oversized_files" toml:"clip_oversized_files"`
}

// withDefaults returns a copy with zero values replaced by defaults.
// MaxTokens has no default and is left as given.
func (c Config) withDefaults() Config {
	if c.MaxFileContexts == 0 {
		c.MaxFileContexts = filectx.DefaultMaxEntries
	}
	if c.FileTokenCap == 0 && c.MaxTokens > 0 {
		c.FileTokenCap = c.MaxTokens / 10
	}
	if c.FileBudgetFraction == 0 {
		c.FileBudgetFraction = payload.DefaultFileBudgetFraction
	}
	if c.WarnThreshold == 0 {
		c.WarnThreshold = usage.DefaultWarnThreshold
	}
	if c.CriticalThreshold == 0 {
		c.CriticalThreshold = usage.DefaultCriticalThreshold
	}
	return c
}

// Validate checks the configuration, rejecting invalid values eagerly
// rather than letting them surface as over-budget payloads later. Zero
// values are treated as defaults, matching session.New.
//
// The system prompt is costed with the default estimating counter; sessions
// constructed with a custom counter re-validate with that counter.
func (c Config) Validate() error {
	return c.withDefaults().validate(tokens.NewEstimatingCounter())
}

// validate checks a defaults-applied config against the given counter.
func (c Config) validate(counter tokens.Counter) error {
	if c.MaxTokens <= 0 {
		return ErrMaxTokens
	}
	if c.MaxFileContexts < 0 {
		return ErrMaxFileContexts
	}
	if c.FileTokenCap < 0 {
		return ErrFileTokenCap
	}
	if c.FileBudgetFraction < 0 || c.FileBudgetFraction > 1 {
		return ErrFileBudgetFraction
	}
	if c.WarnThreshold <= 0 || c.CriticalThreshold >= 1 || c.WarnThreshold >= c.CriticalThreshold {
		return ErrThresholds
	}
	if !counter.FitsInLimit(c.SystemPrompt, c.MaxTokens) {
		return ErrSystemPromptTooLarge
	}
	return nil
}
