// Package contextkit assembles LLM request payloads under a hard token budget.
//
// contextkit is a standalone toolkit extracted from a chat-REPL coding
// assistant, designed to be imported à la carte. Each subpackage can be used
// independently:
//
//   - tokens: Token counting and model context-window limits
//   - history: Append-only conversation log with cached token counts
//   - filectx: Bounded, deduplicated store of pinned file contents
//   - payload: Budget-respecting payload assembly from history and files
//   - usage: Three-tier (ok/warn/critical) context usage monitoring
//   - truncate: Token-aware clipping of oversized content
//   - session: One-stop session state tying the above together
//   - config: Session configuration from YAML/TOML files
//   - watch: Keep pinned files fresh via filesystem notifications
//
// # Quick Start
//
// A complete session:
//
//	import (
//	    "github.com/randalmurphal/contextkit/history"
//	    "github.com/randalmurphal/contextkit/session"
//	)
//
//	sess, _ := session.New(session.Config{
//	    SystemPrompt: "You are a helpful coding assistant.",
//	    MaxTokens:    100000,
//	})
//	sess.AppendMessage(history.RoleUser, "What does main.go do?")
//	sess.AddFile("main.go", contents)
//	entries := sess.BuildPayload("")
//	// pass entries to your provider SDK, then record the reply:
//	sess.AppendMessage(history.RoleAssistant, reply)
//
// Checking usage before a request:
//
//	report := sess.Usage()
//	if report.Tier == usage.TierCritical {
//	    // warn the user, or compact
//	}
//
// # Design Philosophy
//
// contextkit follows these principles:
//
//   - Conversation record and model payload are separate concerns: the
//     history log is never evicted, only the payload is truncated
//   - Entries are atomic: the builder drops whole entries, never splits one
//   - Deterministic assembly: same state in, same payload out
//   - No provider SDK dependency: payload entries are plain role/content
//     pairs the caller maps onto whatever transport it uses
package contextkit
