// Package providers groups the LLM provider adapters.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/interviewer/pkg/providers/huggingface]: Hugging Face Inference API (single "inputs" prompt)
//   - [github.com/germanamz/interviewer/pkg/providers/openai]: OpenAI-compatible Chat Completions
//   - [github.com/germanamz/interviewer/pkg/providers/provider]: provider tag parsing and adapter selection
//
// Shared HTTP plumbing lives in [github.com/germanamz/interviewer/pkg/modeladapter].
package providers
