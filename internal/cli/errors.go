package cli

import (
	"errors"

	"github.com/amirbrooks/tasker-lite/internal/command"
	"github.com/amirbrooks/tasker-lite/internal/store"
	"github.com/amirbrooks/tasker-lite/internal/task"
)

func describeError(err error) string {
	switch {
	case errors.Is(err, command.ErrInvalidCommand):
		return "OOPS!!! I'm sorry, but I don't know what that means. Type 'help' to see what I understand."
	case errors.Is(err, command.ErrInvalidDate):
		return "OOPS!!! Dates must be written as YYYY-MM-DD."
	case errors.Is(err, command.ErrNotANumber):
		return "OOPS!!! The task number must be a whole number."
	case errors.Is(err, task.ErrIndexOutOfRange):
		return "OOPS!!! There is no task with that number."
	case errors.Is(err, task.ErrCorruptData):
		return "OOPS!!! The saved tasks could not be read."
	case errors.Is(err, store.ErrStorageUnavailable):
		return "OOPS!!! The task file could not be accessed: " + err.Error()
	default:
		return "OOPS!!! " + err.Error()
	}
}

func describeLoadError(le *store.LoadError, path string) string {
	if le.Cause == store.CauseCorrupt {
		return "Saved tasks in " + path + " could not be read. Starting with an empty list."
	}
	return "No saved tasks found at " + path + ". Starting with an empty list."
}
