package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// File mirrors the optional YAML configuration file. Pointer fields tell
// "absent" apart from zero values.
type File struct {
	Provider    *string  `yaml:"provider"`
	Model       *string  `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`
	System      *string  `yaml:"system"`

	HuggingFace struct {
		URL    string `yaml:"url"`
		APIKey string `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	} `yaml:"huggingface"`

	OpenAI struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	} `yaml:"openai"`

	Auth struct {
		Header string `yaml:"header"`
		Scheme string `yaml:"scheme"`
		Bearer *bool  `yaml:"bearer"`
	} `yaml:"auth"`
}

// LoadFile reads a YAML file. A missing file yields an empty File.
// Environment variables referenced as ${VAR} or $VAR are expanded before
// parsing so secrets can stay in the environment or a .env file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if errors.Is(err, os.ErrNotExist) {
		return File{}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("config: load file: %w", err)
	}

	return ParseFile(data)
}

// ParseFile parses YAML configuration data after environment expansion.
func ParseFile(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &f); err != nil {
		return File{}, fmt.Errorf("config: parse file: %w", err)
	}

	return f, nil
}

// Apply overlays the values present in f onto cfg.
func (f File) Apply(cfg Config) Config {
	if f.Provider != nil {
		cfg.Provider = *f.Provider
	}
	if f.Model != nil {
		cfg.Model = *f.Model
	}
	if f.Temperature != nil {
		cfg.Temperature = *f.Temperature
	}
	if f.MaxTokens != nil {
		cfg.MaxTokens = *f.MaxTokens
	}
	if f.System != nil {
		cfg.System = *f.System
	}

	if f.HuggingFace.URL != "" {
		cfg.HuggingFace.URL = f.HuggingFace.URL
	}
	if f.HuggingFace.APIKey != "" {
		cfg.HuggingFace.APIKey = f.HuggingFace.APIKey
	}
	if f.OpenAI.BaseURL != "" {
		cfg.OpenAI.BaseURL = f.OpenAI.BaseURL
	}
	if f.OpenAI.APIKey != "" {
		cfg.OpenAI.APIKey = f.OpenAI.APIKey
	}
	if f.Auth.Header != "" {
		cfg.Auth.Header = f.Auth.Header
	}
	if f.Auth.Scheme != "" {
		cfg.Auth.Scheme = f.Auth.Scheme
	}
	if f.Auth.Bearer != nil {
		cfg.Auth.Raw = !*f.Auth.Bearer
	}

	return cfg
}

// LoadDotEnv loads environment variables from path. If the file does not
// exist it is silently ignored so that .env files remain optional. Variables
// already set in the environment are not overridden.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}
