// Package filectx keeps a bounded, deduplicated store of pinned files.
//
// A pinned file is content the user has explicitly added to the model's
// context, distinct from file content a conversation turn merely mentions.
// The store enforces three policies:
//
//   - Dedup: one entry per path. Re-adding replaces content and refreshes
//     the entry's recency.
//   - Per-file cap: Add returns false for content over the cap, leaving the
//     store unchanged. "File too large" is an expected condition, not an
//     error.
//   - FIFO eviction: when capacity is exceeded, the least-recently touched
//     entries are dropped first.
//
// Usage:
//
//	store := filectx.NewStore(5, 10000)
//	ok := store.Add("main.go", contents)  // false if over 10000 tokens
//	store.Remove("main.go")
//	store.TotalTokens()
package filectx
