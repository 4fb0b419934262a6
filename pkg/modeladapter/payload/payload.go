// Package payload classifies provider response bodies whose shape is not
// known in advance. Every variant can be turned back into text, so callers
// always have something to show when a body does not match what they expect.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Payload is one of Raw, List, Object or Scalar.
type Payload interface {
	// String serializes the payload back to text.
	String() string

	isPayload()
}

// Raw is a body that was not declared as JSON.
type Raw struct {
	Text string
}

// List is a JSON array.
type List struct {
	Items []json.RawMessage
	raw   json.RawMessage
}

// Object is a JSON object.
type Object struct {
	Fields map[string]json.RawMessage
	raw    json.RawMessage
}

// Scalar is any other JSON value (string, number, bool or null).
type Scalar struct {
	JSON json.RawMessage
}

func (Raw) isPayload()    {}
func (List) isPayload()   {}
func (Object) isPayload() {}
func (Scalar) isPayload() {}

func (p Raw) String() string    { return p.Text }
func (p List) String() string   { return compact(p.raw) }
func (p Object) String() string { return compact(p.raw) }
func (p Scalar) String() string { return compact(p.JSON) }

// ErrInvalidJSON is returned when a body declared as JSON does not parse.
var ErrInvalidJSON = errors.New("payload: invalid JSON")

// Decode classifies body. Bodies whose content type does not mention
// application/json are returned as Raw with invalid UTF-8 dropped.
func Decode(contentType string, body []byte) (Payload, error) {
	if !IsJSON(contentType) {
		return Raw{Text: strings.ToValidUTF8(string(body), "")}, nil
	}

	return FromJSON(body)
}

// IsJSON reports whether a Content-Type header value declares JSON.
func IsJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

// FromJSON classifies a JSON document.
func FromJSON(data []byte) (Payload, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}

	raw := json.RawMessage(data)

	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("payload: %w", err)
		}
		return List{Items: items, raw: raw}, nil

	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("payload: %w", err)
		}
		return Object{Fields: fields, raw: raw}, nil
	}

	return Scalar{JSON: raw}, nil
}

// Must classifies a JSON fragment that is already known to be valid, such as
// an element of a List or a field of an Object.
func Must(data json.RawMessage) Payload {
	p, err := FromJSON(data)
	if err != nil {
		return Raw{Text: string(data)}
	}
	return p
}

// Has reports whether the object carries field, whatever its value.
func (p Object) Has(field string) bool {
	_, ok := p.Fields[field]
	return ok
}

// Field returns the named field as a Payload, or nil when absent.
func (p Object) Field(field string) Payload {
	raw, ok := p.Fields[field]
	if !ok {
		return nil
	}
	return Must(raw)
}

// Str returns the named field when it is a non-empty JSON string.
func (p Object) Str(field string) (string, bool) {
	raw, ok := p.Fields[field]
	if !ok {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}

	return s, true
}

// First returns the first element of the list, or nil when empty.
func (p List) First() Payload {
	if len(p.Items) == 0 {
		return nil
	}
	return Must(p.Items[0])
}

// Text renders a JSON value as text: strings are unquoted, everything else
// (null included) is serialized.
func Text(p Payload) string {
	if s, ok := p.(Scalar); ok && len(s.JSON) > 0 && s.JSON[0] == '"' {
		var str string
		if err := json.Unmarshal(s.JSON, &str); err == nil {
			return str
		}
	}
	return p.String()
}

// compact strips insignificant whitespace and leaves HTML characters and
// non-ASCII text as received.
func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
