// Package prompt asks the user questions one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Asker answers questions. Ask blocks until an answer is available.
type Asker interface {
	Ask(question string) (string, error)
}

// Multiline reads answers until an empty one and joins them with newlines.
func Multiline(a Asker, question string) (string, error) {
	var lines []string
	q := question
	for {
		line, err := a.Ask(q)
		if errors.Is(err, io.EOF) && len(lines) > 0 {
			break
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
		q = ""
	}
	return strings.Join(lines, "\n"), nil
}

// Console asks on Out and reads answers from In.
type Console struct {
	In  io.Reader
	Out io.Writer
	// Quiet suppresses the questions, e.g. when input is piped.
	Quiet bool

	r *bufio.Reader
}

// NewConsole prompts on stdout only when stdin is a terminal.
func NewConsole() *Console {
	fd := os.Stdin.Fd()
	return &Console{
		In:    os.Stdin,
		Out:   color.Output,
		Quiet: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
	}
}

func (c *Console) Ask(question string) (string, error) {
	if c.r == nil {
		c.r = bufio.NewReader(c.In)
	}
	if question != "" && !c.Quiet {
		_, _ = color.New(color.Bold).Fprint(c.Out, question+" ")
	}
	line, err := c.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Script replays fixed answers in order and records the questions asked.
type Script struct {
	Answers []string
	Asked   []string
}

func (s *Script) Ask(question string) (string, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return "", io.EOF
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
