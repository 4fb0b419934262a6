// Interviewer forwards a question, with optional topic and context, to a
// Hugging Face or OpenAI-compatible LLM endpoint and prints the answer. With
// no question on the command line it runs an interactive loop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/germanamz/interviewer/cmd/interviewer/internal/render"
	"github.com/germanamz/interviewer/cmd/interviewer/internal/repl"
	"github.com/germanamz/interviewer/pkg/config"
	"github.com/germanamz/interviewer/pkg/modeladapter"
	"github.com/germanamz/interviewer/pkg/prompt"
	"github.com/germanamz/interviewer/pkg/providers/provider"
)

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if err := config.LoadDotEnv(opts.envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := newLogger(os.Stderr, opts.verbose)

	cfg, err := config.Load(config.Options{Path: opts.configPath, Lookup: os.LookupEnv})
	if err != nil {
		return err
	}
	cfg = opts.apply(cfg)

	completer, err := provider.New(cfg, provider.Options{Logger: log})
	if err != nil {
		return err
	}

	log.Debug("configured", "provider", cfg.Provider, "model", cfg.Model,
		"temperature", cfg.Temperature, "max_tokens", cfg.MaxTokens)

	r := render.New(isTerminal(os.Stdout) && !opts.raw, terminalWidth(os.Stdout))

	a := &asker{
		completer: completer,
		base: prompt.Request{
			Context: opts.context,
			Topic:   opts.topic,
			System:  cfg.System,
		},
	}

	if len(opts.words) > 0 {
		return a.once(ctx, os.Stdout, r, strings.Join(opts.words, " "))
	}

	loop := &repl.Loop{
		In:    repl.NewLineReader(os.Stdin, os.Stdout, r.Prompt()),
		Ask:   a.ask,
		Out:   os.Stdout,
		Print: r,
	}
	if r.Styled() && isTerminal(os.Stdin) {
		loop.In = repl.FormReader{Title: render.QuestionPrefix}
		loop.Ask = repl.WithSpinner(a.ask)
	}

	return loop.Run(ctx)
}

// asker binds the per-process prompt qualifiers to a Completer.
type asker struct {
	completer modeladapter.Completer
	base      prompt.Request
}

func (a *asker) ask(ctx context.Context, question string) (string, error) {
	req := a.base
	req.Question = question

	return a.completer.Answer(ctx, req)
}

// once answers a single question and prints the answer as received.
func (a *asker) once(ctx context.Context, out io.Writer, r *render.Renderer, question string) error {
	answer, err := a.ask(ctx, question)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, r.Answer(answer))
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

func terminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // fd fits in int
	if err != nil {
		return 0
	}
	return w
}
