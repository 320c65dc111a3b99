// Package payload assembles model request payloads under a token budget.
//
// The builder merges a system prompt, pinned file contexts, and conversation
// history into one ordered entry list whose total cached token cost never
// exceeds the budget:
//
//	b := payload.NewBuilder()
//	entries := b.Build(systemPrompt, files, log, 100000, "")
//
// Assembly rules, in order:
//
//   - The system prompt is first and is never dropped.
//   - Files get a reserved sub-budget (10% of the total by default), walked
//     oldest-first, stopping at the first file that does not fit.
//   - History is fit newest-first against the whole budget, then emitted in
//     original insertion order.
//   - An optional pending user message is appended last only if it fits.
//
// Entries are atomic: content is never partially included. Injected file
// entries are labeled so callers (and the model) can tell them apart from
// authored turns; see FormatFile and IsFileEntry.
//
// The builder only reads the log and store. Dropping an entry from a payload
// does not remove it from the underlying state.
package payload
