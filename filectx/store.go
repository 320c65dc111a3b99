package filectx

import "github.com/randalmurphal/contextkit/tokens"

// DefaultMaxEntries is the default number of files kept pinned at once.
const DefaultMaxEntries = 5

// FileContext is one pinned file's content with its cached token cost.
type FileContext struct {
	Path    string
	Content string

	// Tokens is the estimated token cost of Content, computed when the
	// entry was last set.
	Tokens int
}

// Store is a bounded, deduplicated collection of pinned file contents.
//
// Paths are unique: re-adding a path replaces its content and moves the
// entry to the most-recent end, so a freshly re-pinned file is the last
// candidate for eviction. When capacity is exceeded the least-recently
// touched entries are evicted first.
type Store struct {
	counter    tokens.Counter
	maxEntries int
	perFileCap int

	// entries is ordered least-recently to most-recently touched.
	entries []FileContext
	total   int
}

// NewStore creates a store holding at most maxEntries files, rejecting any
// single file whose content estimates above perFileCap tokens.
// maxEntries <= 0 uses DefaultMaxEntries; perFileCap <= 0 disables the
// per-file cap.
func NewStore(maxEntries, perFileCap int) *Store {
	return NewStoreWithCounter(maxEntries, perFileCap, nil)
}

// NewStoreWithCounter creates a store using the given counter.
// If counter is nil, the default estimating counter is used.
func NewStoreWithCounter(maxEntries, perFileCap int, counter tokens.Counter) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if counter == nil {
		counter = tokens.NewEstimatingCounter()
	}
	return &Store{
		counter:    counter,
		maxEntries: maxEntries,
		perFileCap: perFileCap,
	}
}

// Add pins a file's content. It returns false, leaving the store unchanged,
// when the content exceeds the per-file token cap — an expected, recoverable
// condition, not an error.
//
// If the path is already pinned the old entry is replaced and the file moves
// to the most-recent position. If the store then exceeds capacity, the
// least-recently touched entries are evicted until it fits.
func (s *Store) Add(path, content string) bool {
	count := s.counter.Count(content)
	if s.perFileCap > 0 && count > s.perFileCap {
		return false
	}

	s.Remove(path)
	s.entries = append(s.entries, FileContext{
		Path:    path,
		Content: content,
		Tokens:  count,
	})
	s.total += count

	for len(s.entries) > s.maxEntries {
		s.total -= s.entries[0].Tokens
		s.entries = s.entries[1:]
	}
	return true
}

// Remove unpins a file. It returns true if an entry existed for the path.
func (s *Store) Remove(path string) bool {
	for i, e := range s.entries {
		if e.Path == path {
			s.total -= e.Tokens
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the pinned entry for a path, if present.
func (s *Store) Get(path string) (FileContext, bool) {
	for _, e := range s.entries {
		if e.Path == path {
			return e, true
		}
	}
	return FileContext{}, false
}

// OldestFirst visits pinned files from least-recently to most-recently
// touched. Iteration stops early when fn returns false. Each call starts a
// fresh walk over the current contents.
func (s *Store) OldestFirst(fn func(FileContext) bool) {
	for _, e := range s.entries {
		if !fn(e) {
			return
		}
	}
}

// Paths returns the pinned paths from least-recently to most-recently
// touched.
func (s *Store) Paths() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Path
	}
	return out
}

// Len returns the number of pinned files.
func (s *Store) Len() int {
	return len(s.entries)
}

// TotalTokens returns the sum of token costs across all pinned files.
func (s *Store) TotalTokens() int {
	return s.total
}
