package ui

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource yields raw input lines. It returns io.EOF once input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

type readerSource struct {
	r *bufio.Reader
}

// NewLineSource reads newline-terminated lines of any length from r.
func NewLineSource(r io.Reader) LineSource {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
