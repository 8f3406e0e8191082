// Package ui renders session output and reads user input.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Display receives pre-formatted lines for the user.
type Display interface {
	Show(lines ...string)
	Error(msg string)
}

const ruleWidth = 60

// Console draws each response as an indented block between two rules.
type Console struct {
	out     io.Writer
	rule    lipgloss.Style
	text    lipgloss.Style
	errText lipgloss.Style
}

// NewConsole returns a Console writing to out. With color disabled the
// output is plain ASCII regardless of the terminal.
func NewConsole(out io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		out:     out,
		rule:    r.NewStyle().Faint(true),
		text:    r.NewStyle().PaddingLeft(1),
		errText: r.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("9")),
	}
}

func (c *Console) Show(lines ...string) {
	c.block(c.text, lines)
}

func (c *Console) Error(msg string) {
	c.block(c.errText, []string{msg})
}

func (c *Console) Greet() {
	c.Show("Hello! I'm tasker.", "What can I do for you?")
}

func (c *Console) Goodbye() {
	c.Show("Bye. Hope to see you again soon!")
}

// Prompt writes the input prompt without a trailing newline.
func (c *Console) Prompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Console) block(style lipgloss.Style, lines []string) {
	rule := c.rule.Render(strings.Repeat("_", ruleWidth))
	var b strings.Builder
	b.WriteString(rule)
	b.WriteByte('\n')
	for _, line := range lines {
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	b.WriteByte('\n')
	_, _ = io.WriteString(c.out, b.String())
}
