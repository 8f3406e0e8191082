package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeFormat(t *testing.T) {
	l := sampleList()
	_, err := l.MarkDoneAt(2)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"T | 0 | buy milk",
		"D | 1 | return book | Dec 25 2023",
		"E | 0 | Milk tasting | next week",
	}, l.Serialize())
}

func TestRoundTrip(t *testing.T) {
	done := NewEvent("a | b", `c\d`)
	done.Done = true
	tasks := []Task{
		NewTodo("plain"),
		NewTodo(" padded  "),
		NewTodo(`back\slash and | pipe`),
		NewTodo("line\nbreak\r"),
		NewDeadline("ends with pipe |", "| starts with pipe"),
		NewDeadline("empty label", ""),
		NewDeadline("x", `\|\`),
		done,
	}

	lines := NewList(tasks...).Serialize()
	got, err := Deserialize(lines)
	require.NoError(t, err)
	assert.Equal(t, tasks, got.Tasks())
}

func TestDeserializeSkipsBlankLines(t *testing.T) {
	l, err := Deserialize([]string{"", "T | 1 | read", "   "})
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())
	got, _ := l.At(1)
	assert.True(t, got.Done)
}

func TestDeserializeCorrupt(t *testing.T) {
	cases := map[string]string{
		"unknown kind":       "X | 0 | foo",
		"bad flag":           "T | 2 | foo",
		"too few fields":     "T | 0",
		"todo with label":    "T | 0 | foo | bar",
		"deadline no label":  "D | 0 | foo",
		"event extra field":  "E | 0 | foo | bar | baz",
		"blank description":  "T | 0 |  ",
		"unpadded separator": "T|0|foo",
		"dangling escape":    `T | 0 | foo\`,
		"unknown escape":     `T | 0 | f\oo`,
		"no separators":      "garbage",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Deserialize([]string{"T | 0 | ok", line})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptData)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}
