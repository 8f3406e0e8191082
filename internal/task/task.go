// Package task holds the task model, the ordered task list and its line codec.
package task

import (
	"fmt"
	"strings"
)

// Kind identifies a task variant.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// Task is a single entry. Label is the due label for deadlines and the
// period label for events; it is empty for plain to-dos.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Label       string
}

func NewTodo(description string) Task {
	return Task{Kind: KindTodo, Description: description}
}

func NewDeadline(description, due string) Task {
	return Task{Kind: KindDeadline, Description: description, Label: due}
}

func NewEvent(description, period string) Task {
	return Task{Kind: KindEvent, Description: description, Label: period}
}

func (t Task) StatusMark() string {
	if t.Done {
		return "X"
	}
	return " "
}

// String renders the task the way it is shown to the user, e.g.
// "[D][ ] return book (by: Dec 25 2023)".
func (t Task) String() string {
	base := fmt.Sprintf("[%s][%s] %s", t.Kind, t.StatusMark(), t.Description)
	switch t.Kind {
	case KindDeadline:
		return base + " (by: " + t.Label + ")"
	case KindEvent:
		return base + " (at: " + t.Label + ")"
	default:
		return base
	}
}

func (t Task) matches(keyword string) bool {
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(keyword))
}

func (k Kind) valid() bool {
	switch k {
	case KindTodo, KindDeadline, KindEvent:
		return true
	}
	return false
}

func (k Kind) hasLabel() bool {
	return k == KindDeadline || k == KindEvent
}
