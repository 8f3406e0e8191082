// Package cli wires configuration, storage and display into a task session.
package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/amirbrooks/tasker-lite/internal/command"
	"github.com/amirbrooks/tasker-lite/internal/store"
	"github.com/amirbrooks/tasker-lite/internal/task"
	"github.com/amirbrooks/tasker-lite/internal/ui"
)

// Session owns the task list and storage handle for one run.
type Session struct {
	tasks   *task.List
	display ui.Display
	storage *store.Storage
	log     *log.Logger
}

// NewSession loads the stored list. When that fails for any reason the
// session starts empty and the backing file is recreated.
func NewSession(storage *store.Storage, display ui.Display, logger *log.Logger) *Session {
	s := &Session{display: display, storage: storage, log: logger}

	tasks, err := storage.LoadList()
	if err == nil {
		logger.Debug("loaded tasks", "count", tasks.Len(), "path", storage.Path)
		s.tasks = tasks
		return s
	}

	var le *store.LoadError
	if errors.As(err, &le) {
		logger.Warn("starting with an empty list", "cause", le.Cause, "err", le.Err)
		display.Error(describeLoadError(le, storage.Path))
	}
	s.tasks = task.NewList()
	backup, err := storage.CreateNew(display)
	if err != nil {
		logger.Error("could not create data file", "path", storage.Path, "err", err)
		display.Error(describeError(err))
		return s
	}
	if backup != "" {
		logger.Info("kept unreadable data file", "backup", backup)
	}
	return s
}

// Tasks exposes the live list.
func (s *Session) Tasks() *task.List { return s.tasks }

// Execute parses and runs one line. The returned flag is true only for a
// successfully parsed exit command.
func (s *Session) Execute(line string) (bool, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		s.log.Debug("rejected input", "line", line, "err", err)
		return false, err
	}
	s.log.Debug("executing", "kind", command.Classify(line))
	if err := cmd.Execute(s.tasks, s.display, s.storage); err != nil {
		if errors.Is(err, store.ErrStorageUnavailable) {
			s.log.Error("persisting tasks", "path", s.storage.Path, "err", err)
		}
		return false, err
	}
	return cmd.Exit(), nil
}

// Run reads lines until an exit command or the end of input. Command errors
// are reported and never end the loop.
func (s *Session) Run(src ui.LineSource) error {
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		exit, err := s.Execute(line)
		if err != nil {
			s.display.Error(describeError(err))
		}
		if exit {
			return nil
		}
	}
}
