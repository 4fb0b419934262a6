package repl

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/huh/spinner"
)

// ThinkingMessages are displayed while a request is in flight.
var ThinkingMessages = []string{
	"Thinking...",
	"Pondering the cosmos...",
	"Consulting ancient scrolls...",
	"Brewing a response...",
	"Connecting synapses...",
	"Mining for wisdom...",
	"Summoning knowledge...",
	"Assembling words...",
	"Crunching tokens...",
	"Weaving thoughts...",
}

type askResult struct {
	answer string
	err    error
}

// spinFunc shows a spinner until ctx is done. A non-nil error while ctx is
// still live means the user aborted it.
type spinFunc func(ctx context.Context, title string) error

func huhSpinner(ctx context.Context, title string) error {
	return spinner.New().Title(title).Context(ctx).Run()
}

// WithSpinner wraps ask so that a spinner is shown until the answer arrives.
// Aborting the spinner (Ctrl+C) cancels the request.
func WithSpinner(ask AskFunc) AskFunc {
	return withSpinner(ask, huhSpinner)
}

func withSpinner(ask AskFunc, spin spinFunc) AskFunc {
	return func(ctx context.Context, question string) (string, error) {
		reqCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		spinCtx, stop := context.WithCancel(reqCtx)
		defer stop()

		done := make(chan askResult, 1)
		go func() {
			answer, err := ask(reqCtx, question)
			done <- askResult{answer: answer, err: err}
			stop()
		}()

		title := ThinkingMessages[rand.IntN(len(ThinkingMessages))] //nolint:gosec // cosmetic
		err := spin(spinCtx, title)

		aborted := err != nil && spinCtx.Err() == nil
		if aborted {
			cancel()
		}

		res := <-done
		if aborted {
			return "", context.Canceled
		}

		return res.answer, res.err
	}
}
