package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirbrooks/tasker-lite/internal/command"
	"github.com/amirbrooks/tasker-lite/internal/store"
	"github.com/amirbrooks/tasker-lite/internal/task"
	"github.com/amirbrooks/tasker-lite/internal/ui"
)

type recordingDisplay struct {
	shown  []string
	errors []string
}

func (d *recordingDisplay) Show(lines ...string) { d.shown = append(d.shown, lines...) }
func (d *recordingDisplay) Error(msg string)     { d.errors = append(d.errors, msg) }

type sliceSource struct {
	lines []string
	reads int
}

func (s *sliceSource) ReadLine() (string, error) {
	if s.reads >= len(s.lines) {
		return "", io.EOF
	}
	s.reads++
	return s.lines[s.reads-1], nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestSession(t *testing.T, content *string) (*Session, *recordingDisplay, *store.Storage) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tasks.txt")
	if content != nil {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(*content), 0o644))
	}
	st := store.Open(path)
	d := &recordingDisplay{}
	return NewSession(st, d, quietLogger()), d, st
}

func ptr(s string) *string { return &s }

func TestNewSessionLoadsExistingTasks(t *testing.T) {
	s, d, _ := newTestSession(t, ptr("T | 0 | buy milk\nD | 1 | essay | Dec 25 2023\n"))
	assert.Equal(t, 2, s.Tasks().Len())
	assert.Empty(t, d.errors)
}

func TestNewSessionFallsBackWhenMissing(t *testing.T) {
	s, d, st := newTestSession(t, nil)
	assert.Equal(t, 0, s.Tasks().Len())
	require.Len(t, d.errors, 1)
	assert.Contains(t, d.errors[0], "No saved tasks found")

	_, err := os.Stat(st.Path)
	assert.NoError(t, err, "data file should be recreated")
}

func TestNewSessionFallsBackWhenCorrupt(t *testing.T) {
	s, d, st := newTestSession(t, ptr("T | 0 | ok\n??\n"))
	assert.Equal(t, 0, s.Tasks().Len())
	require.Len(t, d.errors, 1)
	assert.Contains(t, d.errors[0], "could not be read")

	matches, err := filepath.Glob(st.Path + ".corrupt-*")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRunLoopKeepsGoingAfterErrors(t *testing.T) {
	s, d, st := newTestSession(t, ptr(""))
	src := &sliceSource{lines: []string{
		"todo buy milk",
		"blah",
		"deadline return book /by 2023-12-25",
		"delete 5",
		"done abc",
		"date tomorrow",
		"event party /at next week",
		"done 2",
		"exit",
		"todo never read",
	}}

	require.NoError(t, s.Run(src))
	assert.Equal(t, 9, src.reads, "loop must stop at exit")
	assert.Len(t, d.errors, 4)

	lines, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"T | 0 | buy milk",
		"D | 1 | return book | Dec 25 2023",
		"E | 0 | party | next week",
	}, lines)
}

func TestRunHandlesLinesLongerThanScannerLimit(t *testing.T) {
	s, d, _ := newTestSession(t, ptr(""))
	long := "todo " + strings.Repeat("x", 70000)
	in := strings.NewReader(long + "\ntodo after\nexit\ntodo never\n")

	require.NoError(t, s.Run(ui.NewLineSource(in)))
	assert.Empty(t, d.errors)
	require.Equal(t, 2, s.Tasks().Len())
	first, _ := s.Tasks().At(1)
	assert.Len(t, first.Description, 70000)
	second, _ := s.Tasks().At(2)
	assert.Equal(t, "after", second.Description)
}

func TestRunStopsAtEOF(t *testing.T) {
	s, _, _ := newTestSession(t, ptr(""))
	src := &sliceSource{lines: []string{"todo a", "list"}}
	require.NoError(t, s.Run(src))
	assert.Equal(t, 1, s.Tasks().Len())
}

type failingSource struct{ err error }

func (f failingSource) ReadLine() (string, error) { return "", f.err }

func TestRunPropagatesReadErrors(t *testing.T) {
	s, _, _ := newTestSession(t, ptr(""))
	boom := errors.New("tty gone")
	assert.ErrorIs(t, s.Run(failingSource{err: boom}), boom)
}

func TestExecuteExitFlag(t *testing.T) {
	s, _, _ := newTestSession(t, ptr(""))

	exit, err := s.Execute("exit")
	require.NoError(t, err)
	assert.True(t, exit)

	for _, line := range []string{"list", "exit now", "delete 1", "todo"} {
		exit, _ := s.Execute(line)
		assert.False(t, exit, line)
	}
}

func TestDescribeError(t *testing.T) {
	cases := map[error]string{
		command.ErrInvalidCommand:   "don't know what that means",
		command.ErrInvalidDate:      "YYYY-MM-DD",
		command.ErrNotANumber:       "whole number",
		task.ErrIndexOutOfRange:     "no task with that number",
		store.ErrStorageUnavailable: "could not be accessed",
	}
	for err, want := range cases {
		assert.Contains(t, describeError(err), want)
	}
}

func TestConsoleSessionOutput(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	s := NewSession(store.Open(path), ui.NewConsole(&out, false), quietLogger())

	require.NoError(t, s.Run(ui.NewLineSource(strings.NewReader("todo read\nlist\n"))))
	assert.Contains(t, out.String(), "1.[T][ ] read")
	assert.Contains(t, out.String(), "Now you have 1 task in the list.")
}
