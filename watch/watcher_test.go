package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/contextkit/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(session.Config{MaxTokens: 10000})
	require.NoError(t, err)
	return sess
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPin(t *testing.T) {
	sess := newSession(t)
	w := New(sess)
	path := filepath.Join(t.TempDir(), "a.go")
	writeFile(t, path, "package a")

	require.NoError(t, w.Pin(path))

	fc, ok := sess.File(path)
	require.True(t, ok)
	assert.Equal(t, "package a", fc.Content)
}

func TestPin_MissingFile(t *testing.T) {
	w := New(newSession(t))

	err := w.Pin(filepath.Join(t.TempDir(), "nope.go"))
	assert.Error(t, err)
}

func TestPin_OversizedFile(t *testing.T) {
	// Cap defaults to MaxTokens/10 = 1000 tokens; 8000 chars ~= 2000.
	sess := newSession(t)
	w := New(sess)
	path := filepath.Join(t.TempDir(), "big.go")
	writeFile(t, path, strings.Repeat("x", 8000))

	err := w.Pin(path)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestWatch_RepinsOnWrite(t *testing.T) {
	sess := newSession(t)
	w := New(sess)
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	writeFile(t, path, "v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx, path) }()

	// Initial pin happens before Watch starts waiting for events, but give
	// the goroutine a moment to get there.
	require.Eventually(t, func() bool {
		fc, ok := sess.File(path)
		return ok && fc.Content == "v1"
	}, 2*time.Second, 10*time.Millisecond)

	writeFile(t, path, "v2")

	require.Eventually(t, func() bool {
		fc, ok := sess.File(path)
		return ok && fc.Content == "v2"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

func TestWatch_UnpinsOnRemove(t *testing.T) {
	sess := newSession(t)
	w := New(sess)
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	writeFile(t, path, "contents")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Watch(ctx, path)

	require.Eventually(t, func() bool {
		_, ok := sess.File(path)
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(path))

	require.Eventually(t, func() bool {
		_, ok := sess.File(path)
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatch_InitialPinFailsLoudly(t *testing.T) {
	w := New(newSession(t))

	err := w.Watch(context.Background(), filepath.Join(t.TempDir(), "nope.go"))
	assert.Error(t, err)
}

func TestPoll_DetectsChangeAndRemoval(t *testing.T) {
	sess := newSession(t)
	w := New(sess)
	w.PollInterval = 10 * time.Millisecond
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	writeFile(t, path, "v1")
	require.NoError(t, w.Pin(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	go w.poll(ctx, map[string]string{filepath.Clean(abs): path})

	// Guarantee a modtime change even on coarse-grained filesystems.
	writeFile(t, path, "v2")
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	require.Eventually(t, func() bool {
		fc, ok := sess.File(path)
		return ok && fc.Content == "v2"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(path))

	require.Eventually(t, func() bool {
		_, ok := sess.File(path)
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}
