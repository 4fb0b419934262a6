package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvModel         = "MODEL_ID"
	EnvProvider      = "AGENT_PROVIDER"
	EnvTemperature   = "AGENT_TEMPERATURE"
	EnvMaxTokens     = "AGENT_MAX_TOKENS"
	EnvHuggingFace   = "HUGGINGFACE_API_KEY"
	EnvHF            = "HF_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
	EnvOpenAIKey     = "OPENAI_API_KEY"
)

// ApplyEnv overlays environment values onto cfg. Unset or empty variables
// leave the corresponding field untouched.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	if v := get(EnvModel); v != "" {
		cfg.Model = v
	}
	if v := get(EnvProvider); v != "" {
		cfg.Provider = v
	}

	if v := get(EnvTemperature); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, &Error{Msg: fmt.Sprintf("invalid %s %q: want a number", EnvTemperature, v), Vars: []string{EnvTemperature}}
		}
		cfg.Temperature = t
	}

	if v := get(EnvMaxTokens); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, &Error{Msg: fmt.Sprintf("invalid %s %q: want an integer", EnvMaxTokens, v), Vars: []string{EnvMaxTokens}}
		}
		cfg.MaxTokens = n
	}

	// First non-empty wins.
	if v := get(EnvHuggingFace); v != "" {
		cfg.HuggingFace.APIKey = v
	} else if v := get(EnvHF); v != "" {
		cfg.HuggingFace.APIKey = v
	}

	if v := get(EnvOpenAIBaseURL); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := get(EnvOpenAIKey); v != "" {
		cfg.OpenAI.APIKey = v
	}

	return cfg, nil
}
