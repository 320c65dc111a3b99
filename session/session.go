package session

import (
	"fmt"
	"sync"

	"github.com/randalmurphal/contextkit/filectx"
	"github.com/randalmurphal/contextkit/history"
	"github.com/randalmurphal/contextkit/payload"
	"github.com/randalmurphal/contextkit/tokens"
	"github.com/randalmurphal/contextkit/truncate"
	"github.com/randalmurphal/contextkit/usage"
)

// Session owns the complete context state of one conversation: the message
// log, the pinned-file store, and the static configuration.
//
// Mutations (AppendMessage, AddFile, RemoveFile) and multi-step reads
// (BuildPayload, Usage) are each serialized under one mutex, so a hosting
// application may mutate from a background goroutine (for example a file
// watcher re-pinning changed files) while another builds a payload. A
// partial mutation can never interleave with a build.
//
// Create one Session per conversation and discard it when the conversation
// ends; there is no cross-session or cross-restart state.
type Session struct {
	mu      sync.Mutex
	cfg     Config
	counter tokens.Counter
	log     *history.Log
	files   *filectx.Store
	builder *payload.Builder
}

// New creates a session, applying config defaults and validating eagerly.
// Invalid configuration (non-positive MaxTokens, inverted thresholds, a
// system prompt over budget) is rejected here rather than surfacing later
// as an over-budget payload.
func New(cfg Config, opts ...Option) (*Session, error) {
	s := &Session{counter: tokens.NewEstimatingCounter()}
	for _, opt := range opts {
		opt(s)
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(s.counter); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	s.cfg = cfg

	s.log = history.NewLogWithCounter(s.counter)
	s.files = filectx.NewStoreWithCounter(cfg.MaxFileContexts, cfg.FileTokenCap, s.counter)
	s.builder = payload.NewBuilder().
		WithCounter(s.counter).
		WithFileBudgetFraction(cfg.FileBudgetFraction)
	return s, nil
}

// AppendMessage records a conversation turn. Call it once per user,
// assistant, or tool turn — including the model's reply after each request.
func (s *Session) AppendMessage(role history.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Append(role, content)
}

// AddFile pins a file's content, replacing any previous pin of the same
// path and refreshing its recency. It returns false when the content is
// over the per-file token cap — unless ClipOversizedFiles is set, in which
// case the content is clipped to fit and pinned.
//
// The caller supplies the text; reading bytes from disk is its concern.
func (s *Session) AddFile(path, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.ClipOversizedFiles && s.cfg.FileTokenCap > 0 {
		content, _ = truncate.KeepStart(content, s.cfg.FileTokenCap, s.counter)
	}
	return s.files.Add(path, content)
}

// RemoveFile unpins a file. It returns true if the path was pinned.
func (s *Session) RemoveFile(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.Remove(path)
}

// PinnedFiles returns the currently pinned paths, least-recently touched
// first.
func (s *Session) PinnedFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.Paths()
}

// File returns the pinned entry for a path, if present.
func (s *Session) File(path string) (filectx.FileContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.Get(path)
}

// BuildPayload assembles the entries for one model request. extraUser, if
// non-empty, is a pending user message not yet recorded in the log; it is
// appended last only if it fits the remaining budget.
//
// BuildPayload reads but never mutates session state: entries omitted from
// a payload remain in the log and store. The caller passes the result to
// its model transport and records the reply via AppendMessage.
func (s *Session) BuildPayload(extraUser string) []payload.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder.Build(s.cfg.SystemPrompt, s.files, s.log, s.cfg.MaxTokens, extraUser)
}

// Usage reports current context consumption across the log and file store.
// The total deliberately counts everything recorded, not just what would
// fit in a payload; it is an early-warning signal for the caller's UI.
func (s *Session) Usage() usage.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return usage.Check(s.files, s.log, s.cfg.MaxTokens, s.cfg.WarnThreshold, s.cfg.CriticalThreshold)
}

// Config returns the session's effective configuration, defaults applied.
func (s *Session) Config() Config {
	return s.cfg
}
