package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, maxBackups int) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	m := NewManager(filepath.Join(dir, "backups"), maxBackups)

	// Deterministic, strictly increasing timestamps.
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
	return m, dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSnapshot_MissingSourceIsNoop(t *testing.T) {
	m, dir := newTestManager(t, 3)
	backupPath, err := m.Snapshot(context.Background(), filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Empty(t, backupPath)
}

func TestSnapshot_WritesAndLists(t *testing.T) {
	m, dir := newTestManager(t, 3)
	src := filepath.Join(dir, "yabairc")
	writeFile(t, src, "yabai -m config layout bsp\n")

	backupPath, err := m.Snapshot(context.Background(), src)
	require.NoError(t, err)
	require.NotEmpty(t, backupPath)

	data, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "yabai -m config layout bsp\n", string(data))

	backups, err := m.List("yabairc")
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, backupPath, backups[0])
}

func TestSnapshot_PrunesOldBackups(t *testing.T) {
	m, dir := newTestManager(t, 2)
	src := filepath.Join(dir, "skhdrc")

	for i := 0; i < 4; i++ {
		writeFile(t, src, "alt - h : yabai -m window --focus west\n")
		_, err := m.Snapshot(context.Background(), src)
		require.NoError(t, err)
	}

	backups, err := m.List("skhdrc")
	require.NoError(t, err)
	assert.Len(t, backups, 2, "rotation keeps only max_backups entries")
}

func TestLatest(t *testing.T) {
	m, dir := newTestManager(t, 5)
	src := filepath.Join(dir, "yabairc")

	_, found, err := m.Latest("yabairc")
	require.NoError(t, err)
	assert.False(t, found)

	writeFile(t, src, "first\n")
	_, err = m.Snapshot(context.Background(), src)
	require.NoError(t, err)

	writeFile(t, src, "second\n")
	want, err := m.Snapshot(context.Background(), src)
	require.NoError(t, err)

	got, found, err := m.Latest("yabairc")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}
