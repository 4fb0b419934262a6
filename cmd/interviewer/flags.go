package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/germanamz/interviewer/pkg/config"
)

const usage = `Usage: interviewer [question words...] [flags]

With no question words an interactive loop starts; otherwise the words are
joined into one question, answered, and the program exits.

Environment:
  MODEL_ID                            default model id
  AGENT_PROVIDER                      default provider (hf or openai)
  AGENT_TEMPERATURE, AGENT_MAX_TOKENS default generation parameters
  HUGGINGFACE_API_KEY or HF_API_KEY   Hugging Face credentials
  OPENAI_BASE_URL and OPENAI_API_KEY  OpenAI-compatible endpoint and credentials

Flags:
`

// options holds the parsed command line. Flags that were not given leave
// the configuration untouched.
type options struct {
	words   []string
	context string
	topic   string

	provider    string
	model       string
	temperature float64
	maxTokens   int

	configPath string
	envFile    string
	raw        bool
	verbose    bool

	set map[string]bool
}

// parseArgs parses args. Flags and question words may be interleaved, so
// "interviewer What is a star schema? --topic sql" works.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("interviewer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&o.context, "context", "", "optional context")
	fs.StringVar(&o.topic, "topic", "", "optional topic tag")
	fs.StringVar(&o.provider, "provider", "", "provider: hf (Hugging Face) or openai (OpenAI-compatible); overrides $AGENT_PROVIDER (default hf)")
	fs.StringVar(&o.model, "model", "", "model id; overrides $MODEL_ID (default "+config.DefaultModel+")")
	fs.Float64Var(&o.temperature, "temperature", config.DefaultTemperature, "sampling temperature; overrides $AGENT_TEMPERATURE")
	fs.IntVar(&o.maxTokens, "max_tokens", config.DefaultMaxTokens, "maximum output tokens, at least 16; overrides $AGENT_MAX_TOKENS")
	fs.StringVar(&o.configPath, "config", config.DefaultFile, "path to YAML configuration file (ignored if missing)")
	fs.StringVar(&o.envFile, "env", ".env", "path to .env file (ignored if missing)")
	fs.BoolVar(&o.raw, "raw", false, "print plain text even on a terminal")
	fs.BoolVar(&o.verbose, "verbose", false, "log requests and responses to stderr")

	for {
		if err := fs.Parse(args); err != nil {
			return options{}, err
		}

		args = fs.Args()
		if len(args) == 0 {
			break
		}

		o.words = append(o.words, args[0])
		args = args[1:]
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	return o, nil
}

// apply overlays the flags that were given onto cfg.
func (o options) apply(cfg config.Config) config.Config {
	if o.set["provider"] {
		cfg.Provider = o.provider
	}
	if o.set["model"] {
		cfg.Model = o.model
	}
	if o.set["temperature"] {
		cfg.Temperature = o.temperature
	}
	if o.set["max_tokens"] {
		cfg.MaxTokens = o.maxTokens
	}

	return cfg
}
