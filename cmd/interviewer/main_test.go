package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/germanamz/interviewer/cmd/interviewer/internal/render"
	"github.com/germanamz/interviewer/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCompleter struct {
	got    prompt.Request
	answer string
	err    error
}

func (c *recordingCompleter) Answer(_ context.Context, req prompt.Request) (string, error) {
	c.got = req
	return c.answer, c.err
}

func TestAsker_FillsQuestion(t *testing.T) {
	c := &recordingCompleter{answer: "42"}
	a := &asker{
		completer: c,
		base:      prompt.Request{Context: "ctx", Topic: "topic", System: prompt.DefaultSystem},
	}

	got, err := a.ask(context.Background(), "meaning of life?")
	require.NoError(t, err)

	assert.Equal(t, "42", got)
	assert.Equal(t, prompt.Request{
		Question: "meaning of life?",
		Context:  "ctx",
		Topic:    "topic",
		System:   prompt.DefaultSystem,
	}, c.got)
}

func TestAsker_OncePrintsRawAnswer(t *testing.T) {
	var out bytes.Buffer
	a := &asker{completer: &recordingCompleter{answer: "  spaced answer  "}}

	require.NoError(t, a.once(context.Background(), &out, render.New(false, 0), "q"))
	assert.Equal(t, "  spaced answer  \n", out.String())
}

func TestAsker_OncePropagatesError(t *testing.T) {
	var out bytes.Buffer
	a := &asker{completer: &recordingCompleter{err: errors.New("dial tcp: timeout")}}

	err := a.once(context.Background(), &out, render.New(false, 0), "q")
	assert.EqualError(t, err, "dial tcp: timeout")
	assert.Empty(t, out.String())
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
