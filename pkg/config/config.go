// Package config builds the process-wide configuration once at startup from
// built-in defaults, an optional YAML file and the environment. The resulting
// Config is passed explicitly to the providers; nothing downstream reads the
// environment.
package config

import (
	"github.com/germanamz/interviewer/pkg/prompt"
)

// Defaults.
const (
	DefaultProvider    = "hf"
	DefaultModel       = "meta-llama/Llama-3.1-8B-Instruct"
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 512
	DefaultFile        = "interviewer.yaml"
)

// Config is the resolved configuration for one process.
type Config struct {
	Provider    string // Provider tag: "hf" or "openai".
	Model       string
	Temperature float64
	MaxTokens   int
	System      string // System instruction; empty omits it.

	HuggingFace HuggingFace
	OpenAI      OpenAI
	Auth        Auth
}

// HuggingFace holds the Hugging Face Inference API settings.
type HuggingFace struct {
	URL    string // Endpoint base; the model id is appended. Empty means the public API.
	APIKey string //nolint:gosec // configuration field, not a hardcoded secret
}

// OpenAI holds the settings of an OpenAI-compatible endpoint.
type OpenAI struct {
	BaseURL string
	APIKey  string //nolint:gosec // configuration field, not a hardcoded secret
}

// Auth overrides how the API key is sent. Zero values mean
// "Authorization: Bearer <key>".
type Auth struct {
	Header string
	Scheme string
	Raw    bool // Send the key without a scheme prefix.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider:    DefaultProvider,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		System:      prompt.DefaultSystem,
	}
}

// Options controls Load.
type Options struct {
	Path   string                          // YAML file; ignored if missing.
	Lookup func(key string) (string, bool) // Environment lookup, usually os.LookupEnv.
}

// Load resolves the configuration: defaults, then the YAML file at opts.Path,
// then the environment.
func Load(opts Options) (Config, error) {
	cfg := Default()

	if opts.Path != "" {
		f, err := LoadFile(opts.Path)
		if err != nil {
			return Config{}, err
		}
		cfg = f.Apply(cfg)
	}

	if opts.Lookup != nil {
		var err error
		if cfg, err = ApplyEnv(cfg, opts.Lookup); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}
