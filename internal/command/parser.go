package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirbrooks/tasker-lite/internal/task"
)

var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrInvalidDate    = errors.New("invalid date")
	ErrNotANumber     = errors.New("not a number")
)

const (
	isoDateLayout   = "2006-01-02"
	dateLabelLayout = "Jan 2 2006"

	byMarker = "/by"
	atMarker = "/at"
)

// Parse turns a raw input line into an executable Command.
func Parse(line string) (Command, error) {
	kind := Classify(line)
	_, rest := splitKeyword(line)

	switch kind {
	case List:
		if err := requireExact(line, "list"); err != nil {
			return nil, err
		}
		return ListCommand{}, nil
	case Help:
		if err := requireExact(line, "help"); err != nil {
			return nil, err
		}
		return HelpCommand{}, nil
	case Exit:
		if err := requireExact(line, "exit"); err != nil {
			return nil, err
		}
		return ExitCommand{}, nil
	case Todo:
		return parseTodo(rest)
	case Deadline:
		desc, due, err := splitLabelled(rest, byMarker)
		if err != nil {
			return nil, err
		}
		return AddCommand{Task: task.NewDeadline(desc, lenientDate(due))}, nil
	case Event:
		desc, period, err := splitLabelled(rest, atMarker)
		if err != nil {
			return nil, err
		}
		return AddCommand{Task: task.NewEvent(desc, lenientDate(period))}, nil
	case Done:
		n, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return DoneCommand{Index: n}, nil
	case Delete:
		n, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return DeleteCommand{Index: n}, nil
	case Find:
		keyword := strings.ToLower(strings.TrimSpace(rest))
		if keyword == "" {
			return nil, fmt.Errorf("%w: find needs a keyword", ErrInvalidCommand)
		}
		return FindCommand{Keyword: keyword}, nil
	case Date:
		label, ok := formatDate(strings.TrimSpace(rest))
		if !ok {
			return nil, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, strings.TrimSpace(rest))
		}
		return DateCommand{Label: label}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, strings.TrimSpace(line))
	}
}

func requireExact(line, keyword string) error {
	if strings.TrimSpace(line) != keyword {
		return fmt.Errorf("%w: %s takes no arguments", ErrInvalidCommand, keyword)
	}
	return nil
}

// parseTodo drops every occurrence of the keyword, not only the leading one.
func parseTodo(rest string) (Command, error) {
	desc := strings.TrimSpace(strings.ReplaceAll(rest, "todo", ""))
	if desc == "" {
		return nil, fmt.Errorf("%w: todo needs a description", ErrInvalidCommand)
	}
	return AddCommand{Task: task.NewTodo(desc)}, nil
}

// splitLabelled cuts rest at marker. Empty trailing pieces are dropped, so a
// dangling marker after the label ("a /by b /by") is tolerated.
func splitLabelled(rest, marker string) (desc, label string, err error) {
	parts := strings.Split(rest, marker)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected exactly one %s", ErrInvalidCommand, marker)
	}
	desc = strings.TrimSpace(parts[0])
	label = strings.TrimSpace(parts[1])
	if desc == "" || label == "" {
		return "", "", fmt.Errorf("%w: description and %s value are both required", ErrInvalidCommand, marker)
	}
	return desc, label, nil
}

func parseIndex(rest string) (int, error) {
	s := strings.TrimSpace(rest)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}

func formatDate(s string) (string, bool) {
	d, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return "", false
	}
	return d.Format(dateLabelLayout), true
}

// lenientDate reformats ISO dates and keeps any other text as given.
func lenientDate(s string) string {
	if label, ok := formatDate(s); ok {
		return label
	}
	return s
}
