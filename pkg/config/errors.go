package config

import "errors"

// ErrConfig matches every *Error via errors.Is.
var ErrConfig = errors.New("configuration error")

// Error reports a missing or malformed setting. It is returned before any
// network access takes place.
type Error struct {
	Msg  string   // Human readable description.
	Vars []string // Environment variables involved, if any.
}

// Missing returns an Error naming environment variables that must be set.
func Missing(msg string, vars ...string) *Error {
	return &Error{Msg: msg, Vars: vars}
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is ErrConfig.
func (e *Error) Is(target error) bool {
	return target == ErrConfig
}
