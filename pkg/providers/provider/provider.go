// Package provider selects and builds the Completer for a configured
// provider tag.
package provider

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/germanamz/interviewer/pkg/config"
	"github.com/germanamz/interviewer/pkg/modeladapter"
	"github.com/germanamz/interviewer/pkg/providers/huggingface"
	"github.com/germanamz/interviewer/pkg/providers/openai"
)

// Kind identifies a provider request/response shape.
type Kind string

const (
	HF     Kind = "hf"
	OpenAI Kind = "openai"
)

// ParseKind validates a provider tag. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case HF, OpenAI:
		return k, nil
	}

	return "", &config.Error{
		Msg:  fmt.Sprintf("unknown provider %q (want hf or openai)", s),
		Vars: []string{config.EnvProvider},
	}
}

// Options tunes the adapters built by New.
type Options struct {
	Client *http.Client // Nil uses the adapter default (60s timeout).
	Logger *slog.Logger
}

// New builds the Completer selected by cfg.Provider.
func New(cfg config.Config, opts Options) (modeladapter.Completer, error) {
	kind, err := ParseKind(cfg.Provider)
	if err != nil {
		return nil, err
	}

	var (
		c    modeladapter.Completer
		base *modeladapter.ModelAdapter
	)

	switch kind {
	case HF:
		a := huggingface.New(cfg.HuggingFace.URL, cfg.HuggingFace.APIKey, cfg.Model)
		c, base = a, &a.ModelAdapter
	case OpenAI:
		a := openai.New(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.Model)
		c, base = a, &a.ModelAdapter
	}

	base.Temperature = cfg.Temperature
	base.MaxTokens = cfg.MaxTokens
	base.Auth.Header = cfg.Auth.Header
	base.Auth.Scheme = cfg.Auth.Scheme
	base.Auth.Raw = cfg.Auth.Raw
	base.Client = opts.Client
	if opts.Logger != nil {
		base.Logger = opts.Logger.With("provider", string(kind))
	}

	return c, nil
}
