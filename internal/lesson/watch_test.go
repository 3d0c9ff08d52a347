package lesson

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "tag-release.yaml", tagReleaseYAML)

	loader := NewLoader(dir)
	require.NoError(t, loader.Load())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- loader.Watch(ctx, func() { reloads.Add(1) })
	}()

	// Test 1: dropping a new file into the pack shows up after the
	// debounce. The poll interval stays above the debounce delay so the
	// rewrites cannot keep pushing the timer forward.
	require.Eventually(t, func() bool {
		writeLesson(t, dir, "merge-basics.yaml", mergeBasicsYAML)
		_, ok := loader.Get("merge-basics")
		return ok
	}, 10*time.Second, 2*reloadDebounceDelay)
	assert.GreaterOrEqual(t, reloads.Load(), int64(1))

	// Test 2: cancelling the context stops the watcher.
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchBadDir(t *testing.T) {
	loader := NewLoader("/no/such/lesson/dir")
	err := loader.Watch(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch")
}
