// Package modeladapter defines the interface and shared HTTP plumbing for LLM
// provider adapters.
//
// It contains:
//   - [Completer] interface and embeddable [ModelAdapter] base struct with auth, custom headers and a single-shot JSON POST helper
//   - [github.com/germanamz/interviewer/pkg/modeladapter/payload]: tagged union for response bodies of unknown shape
//
// Model configuration (name, temperature, max tokens) is inlined directly on
// the ModelAdapter struct. This package contains no provider-specific code; concrete
// adapters live in separate packages that import modeladapter.
package modeladapter
