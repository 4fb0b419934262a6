// Package huggingface provides a Completer for the Hugging Face Inference API
// text-generation endpoint.
package huggingface

import (
	"context"
	"fmt"
	"strings"

	"github.com/germanamz/interviewer/pkg/config"
	"github.com/germanamz/interviewer/pkg/modeladapter"
	"github.com/germanamz/interviewer/pkg/modeladapter/payload"
	"github.com/germanamz/interviewer/pkg/prompt"
)

// DefaultBaseURL is the public Inference API; the model id is appended.
const DefaultBaseURL = "https://api-inference.huggingface.co/models"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Hugging Face Inference API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter. An empty baseURL selects DefaultBaseURL.
func New(baseURL, apiKey, model string) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	a := &Adapter{}
	a.BaseURL = strings.TrimRight(baseURL, "/")
	a.Auth = modeladapter.Auth{Key: apiKey}
	a.Name = model
	a.Temperature = config.DefaultTemperature
	a.MaxTokens = config.DefaultMaxTokens

	return a
}

// Answer sends the full prompt block as "inputs" and extracts the generated
// text from whatever shape the API returns.
func (a *Adapter) Answer(ctx context.Context, req prompt.Request) (string, error) {
	if a.Auth.Key == "" {
		return "", config.Missing("set HUGGINGFACE_API_KEY or HF_API_KEY", config.EnvHuggingFace, config.EnvHF)
	}

	body := apiRequest{
		Inputs: prompt.Build(req),
		Parameters: apiParameters{
			MaxNewTokens:   prompt.ClampMaxTokens(a.MaxTokens),
			Temperature:    a.Temperature,
			ReturnFullText: false,
		},
	}

	p, err := a.PostJSON(ctx, "/"+a.Name, body)
	if err != nil {
		return "", fmt.Errorf("huggingface: %w", err)
	}

	return Extract(p), nil
}

// --- request types ---

type apiRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters apiParameters `json:"parameters"`
}

type apiParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// --- response extraction ---

const generatedText = "generated_text"

// Extract returns the answer text from an Inference API response:
//
//  1. a non-empty list: the first item's generated_text, or the item serialized;
//  2. an object carrying generated_text: that value;
//  3. an object with a non-empty text field: that value;
//  4. anything else, serialized.
func Extract(p payload.Payload) string {
	switch v := p.(type) {
	case payload.List:
		first := v.First()
		if first == nil {
			return v.String()
		}
		if obj, ok := first.(payload.Object); ok {
			if s, ok := obj.Str(generatedText); ok {
				return s
			}
		}
		return first.String()

	case payload.Object:
		if v.Has(generatedText) {
			return payload.Text(v.Field(generatedText))
		}
		if s, ok := v.Str("text"); ok {
			return s
		}
	}

	return p.String()
}
