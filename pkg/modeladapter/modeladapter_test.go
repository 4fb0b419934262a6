package modeladapter_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/interviewer/pkg/modeladapter"
	"github.com/germanamz/interviewer/pkg/modeladapter/payload"
	"github.com/germanamz/interviewer/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface check: a mock satisfies Completer.
var _ modeladapter.Completer = (*mockCompleter)(nil)

type mockCompleter struct {
	answer string
	err    error
}

func (m *mockCompleter) Answer(_ context.Context, _ prompt.Request) (string, error) {
	return m.answer, m.err
}

func TestCompleter_Error(t *testing.T) {
	var c modeladapter.Completer = &mockCompleter{err: errors.New("api error")}

	_, err := c.Answer(context.Background(), prompt.Request{Question: "hello"})
	assert.EqualError(t, err, "api error")
}

func newAdapter(baseURL string, auth modeladapter.Auth) *modeladapter.ModelAdapter {
	return &modeladapter.ModelAdapter{BaseURL: baseURL, Auth: auth}
}

func TestNewRequest_BearerAuth(t *testing.T) {
	a := newAdapter("https://api.example.com", modeladapter.Auth{Key: "sk-test"})

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/models/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/models/x", req.URL.String())
	assert.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
}

func TestNewRequest_CustomHeader(t *testing.T) {
	a := newAdapter("https://api.example.com", modeladapter.Auth{Key: "sk-test", Header: "x-api-key"})

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/v1/chat", nil)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", req.Header.Get("x-api-key"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestNewRequest_CustomHeaderWithScheme(t *testing.T) {
	a := newAdapter("https://api.example.com", modeladapter.Auth{Key: "sk-test", Header: "x-api-key", Scheme: "Token"})

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/v1/chat", nil)
	require.NoError(t, err)
	assert.Equal(t, "Token sk-test", req.Header.Get("x-api-key"))
}

func TestNewRequest_AuthorizationCustomScheme(t *testing.T) {
	a := newAdapter("https://api.example.com", modeladapter.Auth{Key: "sk-test", Scheme: "Key"})

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "Key sk-test", req.Header.Get("Authorization"))
}

func TestNewRequest_AuthorizationRawKey(t *testing.T) {
	a := newAdapter("https://api.example.com", modeladapter.Auth{Key: "sk-test", Header: "Authorization", Raw: true})

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", req.Header.Get("Authorization"))
}

func TestNewRequest_NoAuth(t *testing.T) {
	a := newAdapter("https://api.example.com", modeladapter.Auth{})

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/v1/chat", nil)
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestNewRequest_ExtraHeaders(t *testing.T) {
	a := newAdapter("https://api.example.com", modeladapter.Auth{})
	a.Headers = map[string]string{"x-custom": "value"}

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "value", req.Header.Get("x-custom"))
}

func TestPostJSON_Success(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"msg":"ping"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply": "pong"}`))
	}))
	defer srv.Close()

	a := newAdapter(srv.URL, modeladapter.Auth{Key: "k"})
	a.Client = srv.Client()

	p, err := a.PostJSON(context.Background(), "/chat/completions", map[string]string{"msg": "ping"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	obj, ok := p.(payload.Object)
	require.True(t, ok)
	reply, ok := obj.Str("reply")
	assert.True(t, ok)
	assert.Equal(t, "pong", reply)
}

func TestPostJSON_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("just text"))
	}))
	defer srv.Close()

	a := newAdapter(srv.URL, modeladapter.Auth{})

	p, err := a.PostJSON(context.Background(), "/", struct{}{})
	require.NoError(t, err)
	assert.Equal(t, payload.Raw{Text: "just text"}, p)
}

func TestPostJSON_ErrorStatus(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("model loading"))
	}))
	defer srv.Close()

	a := newAdapter(srv.URL, modeladapter.Auth{})

	_, err := a.PostJSON(context.Background(), "/", struct{}{})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "no retry")

	var statusErr *modeladapter.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "model loading", statusErr.Body)
	assert.EqualError(t, err, "unexpected status 503: model loading")
}

func TestPostJSON_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	a := newAdapter(srv.URL, modeladapter.Auth{})

	_, err := a.PostJSON(context.Background(), "/", struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, payload.ErrInvalidJSON)
	assert.Contains(t, err.Error(), "decode response")
}

func TestPostJSON_MarshalError(t *testing.T) {
	a := newAdapter("http://127.0.0.1:0", modeladapter.Auth{})

	_, err := a.PostJSON(context.Background(), "/", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal payload")
}

func TestPostJSON_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newAdapter(srv.URL, modeladapter.Auth{})

	_, err := a.PostJSON(ctx, "/", struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPostJSON_LogsAtDebug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	a := newAdapter(srv.URL, modeladapter.Auth{})
	a.Name = "tiny-model"
	a.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := a.PostJSON(context.Background(), "/", struct{}{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "sending request")
	assert.Contains(t, out, "model=tiny-model")
	assert.Contains(t, out, "received response")
	assert.Contains(t, out, "status=200")
}

func TestLog_NilDiscards(t *testing.T) {
	var a modeladapter.ModelAdapter
	assert.NotNil(t, a.Log())
}
