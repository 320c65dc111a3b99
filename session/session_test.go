package session

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/contextkit/history"
	"github.com/randalmurphal/contextkit/payload"
	"github.com/randalmurphal/contextkit/usage"
)

// text returns a string estimating to exactly n tokens.
func text(n int) string {
	return strings.Repeat("a", n*4)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "missing max tokens",
			cfg:     Config{},
			wantErr: ErrMaxTokens,
		},
		{
			name:    "negative max tokens",
			cfg:     Config{MaxTokens: -1},
			wantErr: ErrMaxTokens,
		},
		{
			name:    "negative file contexts",
			cfg:     Config{MaxTokens: 1000, MaxFileContexts: -1},
			wantErr: ErrMaxFileContexts,
		},
		{
			name:    "negative file cap",
			cfg:     Config{MaxTokens: 1000, FileTokenCap: -1},
			wantErr: ErrFileTokenCap,
		},
		{
			name:    "file budget fraction over one",
			cfg:     Config{MaxTokens: 1000, FileBudgetFraction: 1.5},
			wantErr: ErrFileBudgetFraction,
		},
		{
			name:    "warn above critical",
			cfg:     Config{MaxTokens: 1000, WarnThreshold: 0.9, CriticalThreshold: 0.5},
			wantErr: ErrThresholds,
		},
		{
			name:    "critical at one",
			cfg:     Config{MaxTokens: 1000, WarnThreshold: 0.5, CriticalThreshold: 1.0},
			wantErr: ErrThresholds,
		},
		{
			name:    "system prompt over budget",
			cfg:     Config{MaxTokens: 10, SystemPrompt: text(50)},
			wantErr: ErrSystemPromptTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	sess, err := New(Config{MaxTokens: 1000})
	require.NoError(t, err)

	cfg := sess.Config()
	assert.Equal(t, 5, cfg.MaxFileContexts)
	assert.Equal(t, 100, cfg.FileTokenCap) // MaxTokens / 10
	assert.Equal(t, 0.10, cfg.FileBudgetFraction)
	assert.Equal(t, 0.8, cfg.WarnThreshold)
	assert.Equal(t, 0.9, cfg.CriticalThreshold)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{MaxTokens: 1000}.Validate())
	assert.ErrorIs(t, Config{}.Validate(), ErrMaxTokens)
}

func TestSession_AddFileRejectsOversized(t *testing.T) {
	// Per-file cap defaults to MaxTokens/10 = 100 tokens.
	sess, err := New(Config{MaxTokens: 1000})
	require.NoError(t, err)

	assert.False(t, sess.AddFile("a.py", text(150)))
	assert.Empty(t, sess.PinnedFiles())
}

func TestSession_AddFileClipsWhenConfigured(t *testing.T) {
	sess, err := New(Config{MaxTokens: 1000, ClipOversizedFiles: true})
	require.NoError(t, err)

	assert.True(t, sess.AddFile("a.py", text(150)))
	assert.Equal(t, []string{"a.py"}, sess.PinnedFiles())

	// The clipped pin must account for no more than the cap.
	report := sess.Usage()
	assert.LessOrEqual(t, report.TotalTokens, 100)
}

func TestSession_FileCapacity(t *testing.T) {
	sess, err := New(Config{MaxTokens: 10000, MaxFileContexts: 5})
	require.NoError(t, err)

	for i := 1; i <= 6; i++ {
		require.True(t, sess.AddFile(fmt.Sprintf("f%d", i), "contents"))
	}

	assert.Equal(t, []string{"f2", "f3", "f4", "f5", "f6"}, sess.PinnedFiles())
}

func TestSession_RemoveFile(t *testing.T) {
	sess, err := New(Config{MaxTokens: 1000})
	require.NoError(t, err)

	sess.AddFile("a.go", "package a")
	assert.True(t, sess.RemoveFile("a.go"))
	assert.False(t, sess.RemoveFile("a.go"))
}

func TestSession_BuildPayload(t *testing.T) {
	sess, err := New(Config{
		SystemPrompt: text(10),
		MaxTokens:    1000,
	})
	require.NoError(t, err)

	sess.AppendMessage(history.RoleUser, "hello")
	sess.AppendMessage(history.RoleAssistant, "hi, how can I help?")
	sess.AddFile("main.go", text(20))

	entries := sess.BuildPayload("what does main.go do?")

	require.Len(t, entries, 5)
	assert.Equal(t, history.RoleSystem, entries[0].Role)
	assert.Equal(t, text(10), entries[0].Content)
	assert.True(t, payload.IsFileEntry(entries[1]))
	assert.Equal(t, "hello", entries[2].Content)
	assert.Equal(t, "hi, how can I help?", entries[3].Content)
	assert.Equal(t, "what does main.go do?", entries[4].Content)
}

func TestSession_BuildPayloadDoesNotMutate(t *testing.T) {
	sess, err := New(Config{MaxTokens: 100})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		sess.AppendMessage(history.RoleUser, text(30))
	}
	before := sess.Usage().TotalTokens

	sess.BuildPayload("")

	assert.Equal(t, before, sess.Usage().TotalTokens)
}

func TestSession_Usage(t *testing.T) {
	sess, err := New(Config{MaxTokens: 100})
	require.NoError(t, err)

	sess.AppendMessage(history.RoleUser, text(95))

	report := sess.Usage()
	assert.Equal(t, 95, report.TotalTokens)
	assert.Equal(t, 0.95, report.Ratio)
	assert.Equal(t, usage.TierCritical, report.Tier)
}

func TestSession_ConcurrentMutationAndBuild(t *testing.T) {
	sess, err := New(Config{MaxTokens: 10000})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sess.AddFile(fmt.Sprintf("f%d", n), text(5))
				sess.AppendMessage(history.RoleUser, "tick")
				sess.BuildPayload("")
				sess.Usage()
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, len(sess.PinnedFiles()), 5)
}
