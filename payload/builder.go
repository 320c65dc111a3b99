package payload

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/contextkit/filectx"
	"github.com/randalmurphal/contextkit/history"
	"github.com/randalmurphal/contextkit/tokens"
)

// DefaultFileBudgetFraction is the share of the total token budget reserved
// for pinned file contexts.
const DefaultFileBudgetFraction = 0.10

// FileLabelPrefix marks a payload entry carrying injected file content
// rather than a user-authored turn.
const FileLabelPrefix = "User added file"

// Entry is one role/content pair in an assembled payload.
type Entry struct {
	Role    history.Role
	Content string
}

// Builder assembles request payloads that respect a hard token budget.
//
// Assembly is deterministic, greedy, and order-preserving: the same log and
// store contents always produce the same payload, and entries are atomic —
// an entry that does not fit is dropped whole, never split.
type Builder struct {
	counter            tokens.Counter
	fileBudgetFraction float64
}

// NewBuilder creates a builder with the default counter and the default
// file-context budget fraction.
func NewBuilder() *Builder {
	return &Builder{
		counter:            tokens.NewEstimatingCounter(),
		fileBudgetFraction: DefaultFileBudgetFraction,
	}
}

// WithCounter sets the counter used for the system prompt and extra user
// message. It must be the same counter the log and store cache counts with.
func (b *Builder) WithCounter(counter tokens.Counter) *Builder {
	if counter != nil {
		b.counter = counter
	}
	return b
}

// WithFileBudgetFraction sets the share of the budget reserved for file
// contexts. Fractions outside (0, 1] fall back to the default.
func (b *Builder) WithFileBudgetFraction(fraction float64) *Builder {
	if fraction <= 0 || fraction > 1 {
		fraction = DefaultFileBudgetFraction
	}
	b.fileBudgetFraction = fraction
	return b
}

// Build assembles the payload for one model request:
//
//  1. The system prompt is always the first entry and is never dropped.
//     A system prompt whose cost alone exceeds maxTokens is a caller
//     misconfiguration (see session.Config.Validate); Build assumes it fits.
//  2. Pinned files are walked oldest-first against the file sub-budget.
//     The walk stops at the first file that does not fit — no bin-packing
//     past a misfit, so truncation stays predictable.
//  3. History is walked newest-first against the overall budget, stopping
//     at the first message that does not fit, then re-reversed so the
//     payload preserves insertion order.
//  4. extraUser, if non-empty, is a pending user message not yet in the
//     log; it is appended last only if it fits the remaining budget.
//     Callers that need to know can compare against the returned entries.
//
// files and log may be nil. The total cached token cost of the returned
// entries never exceeds maxTokens.
func (b *Builder) Build(systemPrompt string, files *filectx.Store, log *history.Log, maxTokens int, extraUser string) []Entry {
	out := []Entry{{Role: history.RoleSystem, Content: systemPrompt}}
	used := b.counter.Count(systemPrompt)

	fileBudget := int(float64(maxTokens) * b.fileBudgetFraction)
	if files != nil {
		fileUsed := 0
		files.OldestFirst(func(fc filectx.FileContext) bool {
			if fileUsed+fc.Tokens > fileBudget {
				return false
			}
			if used+fc.Tokens > maxTokens {
				return false
			}
			fileUsed += fc.Tokens
			used += fc.Tokens
			out = append(out, Entry{
				Role:    history.RoleSystem,
				Content: FormatFile(fc.Path, fc.Content),
			})
			return true
		})
	}

	if log != nil {
		var recent []history.Message
		log.NewestFirst(func(m history.Message) bool {
			if used+m.Tokens > maxTokens {
				return false
			}
			used += m.Tokens
			recent = append(recent, m)
			return true
		})
		// Collected newest-first; restore insertion order.
		for i := len(recent) - 1; i >= 0; i-- {
			out = append(out, Entry{Role: recent[i].Role, Content: recent[i].Content})
		}
	}

	if extraUser != "" {
		if used+b.counter.Count(extraUser) <= maxTokens {
			out = append(out, Entry{Role: history.RoleUser, Content: extraUser})
		}
	}

	return out
}

// FormatFile renders injected file content as a labeled payload entry body.
func FormatFile(path, content string) string {
	return fmt.Sprintf("%s '%s':\n\n%s", FileLabelPrefix, path, content)
}

// IsFileEntry reports whether an entry carries injected file content.
func IsFileEntry(e Entry) bool {
	return e.Role == history.RoleSystem && strings.HasPrefix(e.Content, FileLabelPrefix)
}
