package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleShowFramesLines(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, false)

	c.Show("first", "second")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat("_", ruleWidth), lines[0])
	assert.Equal(t, " first", lines[1])
	assert.Equal(t, " second", lines[2])
	assert.Equal(t, lines[0], lines[3])
}

func TestConsoleErrorIsPlainWithoutColor(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out, false).Error("OOPS")
	assert.Contains(t, out.String(), "\n OOPS\n")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestLineSource(t *testing.T) {
	src := NewLineSource(strings.NewReader("list\r\ntodo a\nlast"))

	for _, want := range []string{"list", "todo a", "last"} {
		got, err := src.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineSourceLongLine(t *testing.T) {
	long := "todo " + strings.Repeat("x", 200*1024)
	src := NewLineSource(strings.NewReader(long + "\nexit\n"))

	got, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, long, got)

	got, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "exit", got)

	_, err = src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
