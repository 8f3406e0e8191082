package command

import (
	"strings"
	"unicode"
)

// Kind is the closed set of command keywords.
type Kind int

const (
	Invalid Kind = iota
	Date
	Deadline
	Delete
	Done
	Event
	Exit
	Find
	Help
	List
	Todo
)

var keywords = map[string]Kind{
	"date":     Date,
	"deadline": Deadline,
	"delete":   Delete,
	"done":     Done,
	"event":    Event,
	"exit":     Exit,
	"find":     Find,
	"help":     Help,
	"list":     List,
	"todo":     Todo,
}

var kindNames = [...]string{"invalid", "date", "deadline", "delete", "done", "event", "exit", "find", "help", "list", "todo"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// Classify maps the first word of line to a Kind, ignoring case.
// Anything unrecognised is Invalid.
func Classify(line string) Kind {
	word, _ := splitKeyword(line)
	if k, ok := keywords[strings.ToLower(word)]; ok {
		return k
	}
	return Invalid
}

// splitKeyword cuts the trimmed line at its first whitespace run.
func splitKeyword(line string) (word, rest string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}
