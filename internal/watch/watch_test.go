package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncedChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yabairc")
	require.NoError(t, os.WriteFile(path, []byte("initial\n"), 0644))

	var mu sync.Mutex
	var changed []string
	w := New(50*time.Millisecond, func(p string) {
		mu.Lock()
		changed = append(changed, p)
		mu.Unlock()
	}, path)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	// Several rapid writes must collapse into one callback.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("edited\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) == 1
	}, 2*time.Second, 20*time.Millisecond)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0644))
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{path}, changed)
	mu.Unlock()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
