package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

// LineReader reads questions line by line, printing a prompt before each.
type LineReader struct {
	r      *bufio.Reader
	out    io.Writer
	prompt string
}

// NewLineReader returns a LineReader over in that writes prompt to out.
func NewLineReader(in io.Reader, out io.Writer, prompt string) *LineReader {
	return &LineReader{r: bufio.NewReader(in), out: out, prompt: prompt}
}

type lineResult struct {
	line string
	err  error
}

// ReadQuestion blocks until a full line is read, input ends or ctx is
// canceled. A final line without a newline is still returned.
func (l *LineReader) ReadQuestion(ctx context.Context) (string, error) {
	fmt.Fprint(l.out, l.prompt)

	ch := make(chan lineResult, 1)
	go func() {
		line, err := l.r.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}

// FormReader reads each question with a huh input field.
type FormReader struct {
	Title string
}

// ReadQuestion shows one input field. Ctrl+C or Esc ends the loop.
func (f FormReader) ReadQuestion(ctx context.Context) (string, error) {
	var question string

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(f.Title).Value(&question),
	)).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}

	return question, nil
}
