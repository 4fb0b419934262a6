// Package repl runs the blocking read-evaluate-print loop: one question is
// read, answered and printed before the next prompt appears.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Banner is printed once when the loop starts.
const Banner = "AI Interview Agent — type your question. Ctrl+C to exit."

// Reader supplies questions. It returns io.EOF when input is exhausted or
// the user asked to leave.
type Reader interface {
	ReadQuestion(ctx context.Context) (string, error)
}

// AskFunc answers one question.
type AskFunc func(ctx context.Context, question string) (string, error)

// Printer formats loop output.
type Printer interface {
	Banner(s string) string
	Reply(answer string) string
	Error(err error) string
}

// Loop wires a Reader, an AskFunc and an output.
type Loop struct {
	In    Reader
	Ask   AskFunc
	Out   io.Writer
	Print Printer
}

// Run prints the banner and loops until the reader is exhausted. Failed
// questions are printed as errors and the loop continues. A canceled
// request aborts the loop with context.Canceled.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.Out, l.Print.Banner(Banner))

	for {
		line, err := l.In.ReadQuestion(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				fmt.Fprintln(l.Out)
				return nil
			}
			return err
		}

		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}

		answer, err := l.Ask(ctx, question)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return context.Canceled
			}
			fmt.Fprintln(l.Out, l.Print.Error(err))
			continue
		}

		fmt.Fprintln(l.Out, l.Print.Reply(answer))
	}
}
