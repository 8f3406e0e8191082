// Package store persists a task list as a flat, line-oriented text file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/amirbrooks/tasker-lite/internal/task"
	"github.com/amirbrooks/tasker-lite/internal/ui"
)

var ErrStorageUnavailable = errors.New("storage unavailable")

// LoadCause tags why LoadList could not produce a list.
type LoadCause string

const (
	CauseUnavailable LoadCause = "unavailable"
	CauseCorrupt     LoadCause = "corrupt"
)

// LoadError is the single failure result of LoadList. It still satisfies
// errors.Is for the wrapped ErrStorageUnavailable or task.ErrCorruptData.
type LoadError struct {
	Cause LoadCause
	Err   error
}

func (e *LoadError) Error() string {
	if e == nil || e.Err == nil {
		return "load failed"
	}
	return "load failed (" + string(e.Cause) + "): " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Storage is the backing file of one task list.
type Storage struct {
	Path string
}

// Open returns a Storage for path. Nothing is touched on disk until a
// method is called.
func Open(path string) *Storage {
	return &Storage{Path: path}
}

// Load returns the raw lines of the backing file.
func (s *Storage) Load() ([]string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	content := strings.TrimRight(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	if content == "" {
		return []string{}, nil
	}
	return strings.Split(content, "\n"), nil
}

// LoadList reads and decodes the backing file in one step.
func (s *Storage) LoadList() (*task.List, error) {
	lines, err := s.Load()
	if err != nil {
		return nil, &LoadError{Cause: CauseUnavailable, Err: err}
	}
	tasks, err := task.Deserialize(lines)
	if err != nil {
		return nil, &LoadError{Cause: CauseCorrupt, Err: err}
	}
	return tasks, nil
}

// CreateNew makes the containing directory and an empty backing file. An
// existing file is kept aside as <file>.corrupt-<ULID> rather than
// overwritten. It returns the backup path, if any.
func (s *Storage) CreateNew(display ui.Display) (string, error) {
	dir := filepath.Dir(s.Path)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		display.Show("Creating data directory " + dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	backup := ""
	if _, err := os.Stat(s.Path); err == nil {
		backup = backupPath(s.Path)
		if err := os.Rename(s.Path, backup); err != nil {
			return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		display.Show("Moved unreadable data file to " + backup)
	}

	if err := atomicWriteFile(s.Path, nil, 0o644); err != nil {
		return backup, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	display.Show("Created new data file " + s.Path)
	return backup, nil
}

// Save replaces the backing file with the serialized list.
func (s *Storage) Save(tasks *task.List) error {
	lines := tasks.Serialize()
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := atomicWriteFile(s.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// backupPath names a sibling of path that sorts by creation time.
func backupPath(path string) string {
	return path + ".corrupt-" + ulid.Make().String()
}

// atomicWriteFile writes data next to path and renames it into place, so
// readers see either the old content or the new, never a partial file.
func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, perm)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
	}
	return err
}
