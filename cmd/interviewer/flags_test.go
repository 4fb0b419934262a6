package main

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/germanamz/interviewer/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Interleaved(t *testing.T) {
	o, err := parseArgs([]string{
		"What", "is", "a", "star", "schema?",
		"--context", "Snowflake DW",
		"--topic", "data_engineering",
		"trailing",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"What", "is", "a", "star", "schema?", "trailing"}, o.words)
	assert.Equal(t, "Snowflake DW", o.context)
	assert.Equal(t, "data_engineering", o.topic)
}

func TestParseArgs_NoWords(t *testing.T) {
	o, err := parseArgs([]string{"--provider", "openai"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Empty(t, o.words)
	assert.Equal(t, "interviewer.yaml", o.configPath)
	assert.Equal(t, ".env", o.envFile)
}

func TestParseArgs_Unknown(t *testing.T) {
	var stderr bytes.Buffer

	_, err := parseArgs([]string{"--nope"}, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "nope")
}

func TestParseArgs_Help(t *testing.T) {
	var stderr bytes.Buffer

	_, err := parseArgs([]string{"-h"}, &stderr)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, stderr.String(), "Usage: interviewer")
	assert.Contains(t, stderr.String(), "-max_tokens")
}

func TestApply_OnlySetFlags(t *testing.T) {
	base := config.Default()
	base.Model = "from-env"
	base.Temperature = 0.7

	o, err := parseArgs([]string{"--max_tokens", "8", "--provider", "openai", "q"}, &bytes.Buffer{})
	require.NoError(t, err)

	cfg := o.apply(base)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 8, cfg.MaxTokens)
	assert.Equal(t, "from-env", cfg.Model, "unset flag keeps env value")
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9, "unset flag keeps env value")
}

func TestApply_AllFlags(t *testing.T) {
	o, err := parseArgs([]string{
		"--provider", "hf",
		"--model", "mistralai/Mistral-7B-Instruct-v0.3",
		"--temperature", "0",
		"--max_tokens", "1024",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	cfg := o.apply(config.Default())

	assert.Equal(t, "hf", cfg.Provider)
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3", cfg.Model)
	assert.Zero(t, cfg.Temperature)
	assert.Equal(t, 1024, cfg.MaxTokens)
}
