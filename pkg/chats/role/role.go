// Package role defines the sender roles of chat-completion messages.
package role

// Role represents the sender of a message in a chat-completion request.
type Role string

const (
	System Role = "system"
	User   Role = "user"
)

// String returns the underlying string value of the role.
func (r Role) String() string {
	return string(r)
}
