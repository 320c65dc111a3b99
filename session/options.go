package session

import "github.com/randalmurphal/contextkit/tokens"

// Option customizes a session at construction time.
type Option func(*Session)

// WithCounter sets the token counter used throughout the session: for the
// system prompt, every logged message, every pinned file, and payload
// assembly. One counter everywhere keeps cached counts consistent.
func WithCounter(counter tokens.Counter) Option {
	return func(s *Session) {
		if counter != nil {
			s.counter = counter
		}
	}
}
