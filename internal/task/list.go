package task

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrCorruptData     = errors.New("corrupt data")
)

// List is an ordered task collection. Indexes accepted and reported by its
// methods are 1-based.
type List struct {
	tasks []Task
}

func NewList(tasks ...Task) *List {
	l := &List{tasks: make([]Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

func (l *List) Len() int { return len(l.tasks) }

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// At returns the task at the 1-based index.
func (l *List) At(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	return l.tasks[index-1], nil
}

// RemoveAt deletes the task at the 1-based index and returns it.
func (l *List) RemoveAt(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	removed := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	return removed, nil
}

// MarkDoneAt flags the task at the 1-based index as done. Marking a task
// that is already done is not an error.
func (l *List) MarkDoneAt(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	l.tasks[index-1].Done = true
	return l.tasks[index-1], nil
}

// FindByKeyword returns tasks whose description contains keyword, ignoring
// case, in list order.
func (l *List) FindByKeyword(keyword string) []Task {
	var out []Task
	for _, t := range l.tasks {
		if t.matches(keyword) {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) checkIndex(index int) error {
	if index < 1 || index > len(l.tasks) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, index, len(l.tasks))
	}
	return nil
}
