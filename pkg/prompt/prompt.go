// Package prompt assembles the prompt block sent to a provider from the
// system instruction, an optional topic, an optional context and the question.
package prompt

import "strings"

// DefaultSystem is the system instruction used when none is configured.
const DefaultSystem = "You are a concise assistant for interview questions. Answer clearly and briefly."

// Closing is the fixed instruction that ends every prompt block.
const Closing = "Answer succinctly."

// MinMaxTokens is the smallest output token budget ever sent to a provider.
const MinMaxTokens = 16

// Request holds the per-question inputs. Empty optional fields are omitted
// from the built prompt.
type Request struct {
	Question string
	Context  string
	Topic    string
	System   string
}

// Build returns the full prompt block: system instruction, topic, context,
// question and closing instruction, separated by blank lines.
func Build(r Request) string {
	return join(r.System, r)
}

// BuildUser returns the prompt block without the system instruction, for
// providers that carry the system instruction as a separate message.
func BuildUser(r Request) string {
	return join("", r)
}

// ClampMaxTokens floors n at MinMaxTokens.
func ClampMaxTokens(n int) int {
	return max(MinMaxTokens, n)
}

func join(system string, r Request) string {
	parts := make([]string, 0, 5)

	if system != "" {
		parts = append(parts, system)
	}
	if r.Topic != "" {
		parts = append(parts, "Topic: "+r.Topic)
	}
	if r.Context != "" {
		parts = append(parts, "Context: "+r.Context)
	}

	parts = append(parts, "Question: "+r.Question, Closing)

	return strings.Join(parts, "\n\n")
}
