// Package backup rotates timestamped copies of the managed config files
// before every write, keeping a bounded history.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tilecfg/tilecfg/internal/logging"
)

const (
	dirPerm  = 0755
	filePerm = 0644

	timestampFormat = "20060102-150405"
	backupSuffix    = ".bak"
)

// Manager writes and prunes backups inside one directory.
type Manager struct {
	dir        string
	maxBackups int
	now        func() time.Time
}

// NewManager creates a backup manager. maxBackups bounds how many backups
// are kept per source file; zero disables pruning.
func NewManager(dir string, maxBackups int) *Manager {
	return &Manager{dir: dir, maxBackups: maxBackups, now: time.Now}
}

// Snapshot copies the file at path into the backup directory with a
// timestamped name and prunes old backups. A missing source file is not an
// error; there is simply nothing to back up.
func (m *Manager) Snapshot(ctx context.Context, path string) (string, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	base := filepath.Base(path)
	name := fmt.Sprintf("%s.%s%s", base, m.now().Format(timestampFormat), backupSuffix)
	backupPath := filepath.Join(m.dir, name)
	if err := os.WriteFile(backupPath, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	log.Debug().Str("backup", backupPath).Msg("wrote config backup")

	if err := m.prune(base); err != nil {
		log.Warn().Err(err).Msg("failed to prune old backups")
	}
	return backupPath, nil
}

// List returns the existing backups for the named source file, newest
// first.
func (m *Manager) List(base string) ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var out []string
	prefix := base + "."
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		out = append(out, filepath.Join(m.dir, name))
	}
	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}

// Latest returns the most recent backup for the named source file.
func (m *Manager) Latest(base string) (string, bool, error) {
	backups, err := m.List(base)
	if err != nil || len(backups) == 0 {
		return "", false, err
	}
	return backups[0], true, nil
}

func (m *Manager) prune(base string) error {
	if m.maxBackups <= 0 {
		return nil
	}
	backups, err := m.List(base)
	if err != nil {
		return err
	}
	for _, old := range backups[min(m.maxBackups, len(backups)):] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}
