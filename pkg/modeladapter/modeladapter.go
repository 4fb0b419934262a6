package modeladapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/germanamz/interviewer/pkg/modeladapter/payload"
	"github.com/germanamz/interviewer/pkg/prompt"
)

// DefaultTimeout bounds one request round trip when no client is configured.
const DefaultTimeout = 60 * time.Second

// StatusError is returned when the API responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Completer answers a single question. Each call performs exactly one
// network round trip.
type Completer interface {
	Answer(ctx context.Context, req prompt.Request) (string, error)
}

// Auth holds authentication settings for an LLM provider API.
type Auth struct {
	Key    string // API key value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
	Raw    bool   // Send the key as-is, without any scheme prefix.
}

// ModelAdapter holds shared state for LLM provider implementations. Embed it
// in concrete provider structs to get HTTP helpers, auth and custom headers.
type ModelAdapter struct {
	Name        string            // Model identifier (e.g. "meta-llama/Llama-3.1-8B-Instruct").
	Temperature float64           // Sampling temperature.
	MaxTokens   int               // Maximum tokens in the response, before clamping.
	Auth        Auth              // Authentication settings.
	BaseURL     string            // API base URL (no trailing slash).
	Client      *http.Client      // HTTP client; falls back to a client with DefaultTimeout.
	Headers     map[string]string // Extra headers applied to every request.
	Logger      *slog.Logger      // Optional; nil discards.

	clientOnce    sync.Once
	defaultClient *http.Client
}

// httpClient returns the configured client or a cached default client with DefaultTimeout.
func (a *ModelAdapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}

	a.clientOnce.Do(func() {
		a.defaultClient = &http.Client{Timeout: DefaultTimeout}
	})

	return a.defaultClient
}

// Log returns the adapter's logger, or a logger that discards everything.
func (a *ModelAdapter) Log() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// NewRequest builds an *http.Request with the base URL, auth, and custom
// headers already applied.
func (a *ModelAdapter) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := a.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if a.Auth.Key != "" {
		header, value := a.Auth.headerValue()
		req.Header.Set(header, value)
	}

	for k, v := range a.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func (au Auth) headerValue() (string, string) {
	header := au.Header
	if header == "" {
		header = "Authorization"
	}

	value := au.Key
	if au.Raw {
		return header, value
	}

	if header == "Authorization" {
		scheme := au.Scheme
		if scheme == "" {
			scheme = "Bearer"
		}

		value = scheme + " " + value
	} else if au.Scheme != "" {
		value = au.Scheme + " " + value
	}

	return header, value
}

// Do sends the request using the configured HTTP client.
func (a *ModelAdapter) Do(req *http.Request) (*http.Response, error) {
	return a.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
}

// PostJSON marshals body as JSON, sends one POST to the given path, checks
// for a 2xx status and classifies the response body. It never retries.
func (a *ModelAdapter) PostJSON(ctx context.Context, path string, body any) (payload.Payload, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := a.NewRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	log := a.Log()
	start := time.Now()
	log.DebugContext(ctx, "sending request", "url", req.URL.Redacted(), "model", a.Name, "bytes", len(data))

	resp, err := a.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	log.DebugContext(ctx, "received response",
		"status", resp.StatusCode,
		"content_type", contentType,
		"bytes", len(respBody),
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	p, err := payload.Decode(contentType, respBody)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return p, nil
}
