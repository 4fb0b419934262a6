// Package chats holds the provider-agnostic vocabulary of chat-completion
// requests.
//
//   - [github.com/germanamz/interviewer/pkg/chats/role]: message roles (system, user)
//
// A request here is always one system message and one user message; there
// is no conversation history.
package chats
