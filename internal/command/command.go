// Package command classifies and parses input lines into executable commands.
package command

import (
	"fmt"

	"github.com/amirbrooks/tasker-lite/internal/task"
	"github.com/amirbrooks/tasker-lite/internal/ui"
)

// Saver persists the whole task list.
type Saver interface {
	Save(tasks *task.List) error
}

// Command is one parsed user action.
type Command interface {
	Execute(tasks *task.List, display ui.Display, saver Saver) error
	// Exit reports whether the session should end after this command.
	Exit() bool
}

type continues struct{}

func (continues) Exit() bool { return false }

type AddCommand struct {
	continues
	Task task.Task
}

func (c AddCommand) Execute(tasks *task.List, display ui.Display, saver Saver) error {
	tasks.Add(c.Task)
	if err := saver.Save(tasks); err != nil {
		return fmt.Errorf("save after add: %w", err)
	}
	display.Show(
		"Got it. I've added this task:",
		"  "+c.Task.String(),
		countLine(tasks.Len()),
	)
	return nil
}

type DeleteCommand struct {
	continues
	Index int
}

func (c DeleteCommand) Execute(tasks *task.List, display ui.Display, saver Saver) error {
	removed, err := tasks.RemoveAt(c.Index)
	if err != nil {
		return err
	}
	if err := saver.Save(tasks); err != nil {
		return fmt.Errorf("save after delete: %w", err)
	}
	display.Show(
		"Noted. I've removed this task:",
		"  "+removed.String(),
		countLine(tasks.Len()),
	)
	return nil
}

type DoneCommand struct {
	continues
	Index int
}

func (c DoneCommand) Execute(tasks *task.List, display ui.Display, saver Saver) error {
	marked, err := tasks.MarkDoneAt(c.Index)
	if err != nil {
		return err
	}
	if err := saver.Save(tasks); err != nil {
		return fmt.Errorf("save after done: %w", err)
	}
	display.Show(
		"Nice! I've marked this task as done:",
		"  "+marked.String(),
	)
	return nil
}

type ListCommand struct{ continues }

func (ListCommand) Execute(tasks *task.List, display ui.Display, _ Saver) error {
	if tasks.Len() == 0 {
		display.Show("Your list is empty.")
		return nil
	}
	display.Show(numbered("Here are the tasks in your list:", tasks.Tasks())...)
	return nil
}

type FindCommand struct {
	continues
	Keyword string
}

func (c FindCommand) Execute(tasks *task.List, display ui.Display, _ Saver) error {
	found := tasks.FindByKeyword(c.Keyword)
	if len(found) == 0 {
		display.Show(fmt.Sprintf("No tasks match %q.", c.Keyword))
		return nil
	}
	display.Show(numbered("Here are the matching tasks in your list:", found)...)
	return nil
}

// DateCommand echoes a date label computed at parse time.
type DateCommand struct {
	continues
	Label string
}

func (c DateCommand) Execute(_ *task.List, display ui.Display, _ Saver) error {
	display.Show(c.Label)
	return nil
}

type HelpCommand struct{ continues }

func (HelpCommand) Execute(_ *task.List, display ui.Display, _ Saver) error {
	display.Show(HelpLines()...)
	return nil
}

type ExitCommand struct{}

func (ExitCommand) Execute(*task.List, ui.Display, Saver) error { return nil }

func (ExitCommand) Exit() bool { return true }

func countLine(n int) string {
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}

func numbered(header string, tasks []task.Task) []string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, header)
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d.%s", i+1, t))
	}
	return lines
}

// HelpLines is the static usage summary.
func HelpLines() []string {
	return []string{
		"Commands:",
		"  list                               show all tasks",
		"  todo <description>                 add a to-do",
		"  deadline <description> /by <date>  add a deadline (date as YYYY-MM-DD or free text)",
		"  event <description> /at <period>   add an event (date as YYYY-MM-DD or free text)",
		"  done <n>                           mark task n as done",
		"  delete <n>                         remove task n",
		"  find <keyword>                     list tasks whose description contains keyword",
		"  date <YYYY-MM-DD>                  print the date as MMM d yyyy",
		"  help                               show this summary",
		"  exit                               save and quit",
	}
}
