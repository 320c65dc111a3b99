package history

import "github.com/randalmurphal/contextkit/tokens"

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles, matching the role strings chat-completion APIs expect.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one recorded conversation turn. Immutable once appended.
type Message struct {
	Role    Role
	Content string

	// Tokens is the estimated token cost of Content, computed once at
	// append time with the log's counter.
	Tokens int
}

// Log is an append-only record of conversation turns with cached token
// counts. The log is unbounded: messages are never evicted, so the record
// of what happened is never silently lost. Budget pressure is resolved at
// payload-build time, not at append time.
type Log struct {
	counter  tokens.Counter
	messages []Message
	total    int
}

// NewLog creates an empty log using the default estimating counter.
func NewLog() *Log {
	return NewLogWithCounter(tokens.NewEstimatingCounter())
}

// NewLogWithCounter creates an empty log using the given counter.
// If counter is nil, the default estimating counter is used.
func NewLogWithCounter(counter tokens.Counter) *Log {
	if counter == nil {
		counter = tokens.NewEstimatingCounter()
	}
	return &Log{counter: counter}
}

// Append records a conversation turn, computing its token cost.
// Append never fails and never evicts earlier messages.
func (l *Log) Append(role Role, content string) Message {
	msg := Message{
		Role:    role,
		Content: content,
		Tokens:  l.counter.Count(content),
	}
	l.messages = append(l.messages, msg)
	l.total += msg.Tokens
	return msg
}

// Len returns the number of recorded messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// TotalTokens returns the sum of token costs across all recorded messages.
func (l *Log) TotalTokens() int {
	return l.total
}

// NewestFirst visits messages in reverse insertion order, newest first.
// Iteration stops early when fn returns false. Each call starts a fresh
// walk over the current contents.
func (l *Log) NewestFirst(fn func(Message) bool) {
	for i := len(l.messages) - 1; i >= 0; i-- {
		if !fn(l.messages[i]) {
			return
		}
	}
}

// Messages returns a copy of all recorded messages in insertion order.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}
