// Package openai provides a Completer for OpenAI-compatible Chat Completions
// APIs (Together, OpenRouter, Fireworks, vLLM and the like).
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/germanamz/interviewer/pkg/chats/role"
	"github.com/germanamz/interviewer/pkg/config"
	"github.com/germanamz/interviewer/pkg/modeladapter"
	"github.com/germanamz/interviewer/pkg/modeladapter/payload"
	"github.com/germanamz/interviewer/pkg/prompt"
)

const completionsPath = "/chat/completions"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for an OpenAI-compatible API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter. The baseURL usually ends with the API version,
// e.g. "https://api.together.xyz/v1"; trailing slashes are stripped.
func New(baseURL, apiKey, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = strings.TrimRight(baseURL, "/")
	a.Auth = modeladapter.Auth{Key: apiKey}
	a.Name = model
	a.Temperature = config.DefaultTemperature
	a.MaxTokens = config.DefaultMaxTokens

	return a
}

// Answer sends the system instruction and the user prompt block as two
// messages and returns the first choice's content.
func (a *Adapter) Answer(ctx context.Context, req prompt.Request) (string, error) {
	if a.BaseURL == "" || a.Auth.Key == "" {
		return "", config.Missing("set OPENAI_BASE_URL and OPENAI_API_KEY for OpenAI-compatible mode",
			config.EnvOpenAIBaseURL, config.EnvOpenAIKey)
	}

	p, err := a.PostJSON(ctx, completionsPath, a.buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	a.logUsage(ctx, p)

	return Extract(p), nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens"`
}

type apiMessage struct {
	Role    role.Role `json:"role"`
	Content string    `json:"content"`
}

// --- response types ---

type apiChoice struct {
	Message struct {
		Content *string `json:"content"`
	} `json:"message"`
	Text string `json:"text"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

func (a *Adapter) buildRequest(req prompt.Request) apiRequest {
	return apiRequest{
		Model: a.Name,
		Messages: []apiMessage{
			{Role: role.System, Content: req.System},
			{Role: role.User, Content: prompt.BuildUser(req)},
		},
		Temperature: a.Temperature,
		MaxTokens:   prompt.ClampMaxTokens(a.MaxTokens),
	}
}

func (a *Adapter) logUsage(ctx context.Context, p payload.Payload) {
	obj, ok := p.(payload.Object)
	if !ok || !obj.Has("usage") {
		return
	}

	var u apiUsage
	if err := json.Unmarshal(obj.Fields["usage"], &u); err != nil {
		return
	}

	a.Log().DebugContext(ctx, "token usage", "input_tokens", u.PromptTokens, "output_tokens", u.CompletionTokens)
}

// Extract returns choices[0].message.content, falling back to
// choices[0].text. Any other shape is returned serialized; extraction never
// fails.
func Extract(p payload.Payload) string {
	obj, ok := p.(payload.Object)
	if !ok || !obj.Has("choices") {
		return p.String()
	}

	var choices []apiChoice
	if err := json.Unmarshal(obj.Fields["choices"], &choices); err != nil || len(choices) == 0 {
		return p.String()
	}

	first := choices[0]
	if c := first.Message.Content; c != nil && *c != "" {
		return *c
	}
	if first.Text != "" {
		return first.Text
	}

	return p.String()
}
