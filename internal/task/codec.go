package task

import (
	"fmt"
	"strings"
)

const fieldSep = " | "

var fieldEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\n", `\n`,
	"\r", `\r`,
)

// Serialize encodes every task as one line:
//
//	KIND | DONE | DESCRIPTION[ | LABEL]
//
// Backslash, pipe and line breaks inside fields are backslash-escaped.
func (l *List) Serialize() []string {
	lines := make([]string, 0, len(l.tasks))
	for _, t := range l.tasks {
		lines = append(lines, encodeTask(t))
	}
	return lines
}

// Deserialize rebuilds a list from lines produced by Serialize.
// Whitespace-only lines are skipped.
func Deserialize(lines []string) (*List, error) {
	l := NewList()
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := decodeTask(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptData, i+1, err)
		}
		l.Add(t)
	}
	return l, nil
}

func encodeTask(t Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{string(t.Kind), done, fieldEscaper.Replace(t.Description)}
	if t.Kind.hasLabel() {
		fields = append(fields, fieldEscaper.Replace(t.Label))
	}
	return strings.Join(fields, fieldSep)
}

func decodeTask(line string) (Task, error) {
	fields, err := splitFields(line)
	if err != nil {
		return Task{}, err
	}
	if len(fields) < 3 {
		return Task{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	kind := Kind(fields[0])
	if !kind.valid() {
		return Task{}, fmt.Errorf("unknown task kind %q", fields[0])
	}
	want := 3
	if kind.hasLabel() {
		want = 4
	}
	if len(fields) != want {
		return Task{}, fmt.Errorf("kind %s expects %d fields, got %d", kind, want, len(fields))
	}

	t := Task{Kind: kind, Description: fields[2]}
	switch fields[1] {
	case "0":
	case "1":
		t.Done = true
	default:
		return Task{}, fmt.Errorf("bad done flag %q", fields[1])
	}
	if strings.TrimSpace(t.Description) == "" {
		return Task{}, fmt.Errorf("empty description")
	}
	if kind.hasLabel() {
		t.Label = fields[3]
	}
	return t, nil
}

// splitFields cuts a line at every unescaped pipe. Each pipe must be padded
// by exactly the single spaces that encodeTask writes around it.
func splitFields(line string) ([]string, error) {
	var fields []string
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '\\':
			if i+1 >= len(line) {
				return nil, fmt.Errorf("dangling escape at column %d", i+1)
			}
			i++
			switch line[i] {
			case '\\':
				b.WriteByte('\\')
			case '|':
				b.WriteByte('|')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			default:
				return nil, fmt.Errorf("unknown escape \\%c at column %d", line[i], i)
			}
		case '|':
			field := b.String()
			if !strings.HasSuffix(field, " ") || i+1 >= len(line) || line[i+1] != ' ' {
				return nil, fmt.Errorf("malformed separator at column %d", i+1)
			}
			fields = append(fields, strings.TrimSuffix(field, " "))
			b.Reset()
			i++
		default:
			b.WriteByte(c)
		}
	}
	fields = append(fields, b.String())
	return fields, nil
}
