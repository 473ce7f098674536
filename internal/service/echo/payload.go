package echo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Errors
var (
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")
	ErrInvalidJSON     = errors.New("invalid json")
)

// PayloadError describes why a request body could not be turned into a Payload.
// It unwraps to ErrInvalidEncoding or ErrInvalidJSON.
type PayloadError struct {
	kind   error
	reason string
}

func (e *PayloadError) Error() string {
	return e.reason
}

func (e *PayloadError) Unwrap() error {
	return e.kind
}

// IsInvalidPayload reports whether err was caused by a body that is not valid
// UTF-8 text or not a valid JSON document.
func IsInvalidPayload(err error) bool {
	return errors.Is(err, ErrInvalidEncoding) || errors.Is(err, ErrInvalidJSON)
}

// Payload is an arbitrary JSON value: map[string]any, []any, string,
// json.Number, bool or nil.
type Payload struct {
	value any
}

// NewPayload wraps an already decoded JSON value.
func NewPayload(v any) Payload {
	return Payload{value: v}
}

// Value returns the decoded JSON value.
func (p Payload) Value() any {
	return p.value
}

// Kind returns the JSON type name of the payload.
func (p Payload) Kind() string {
	switch p.value.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}

// Field looks up key when the payload is an object. Any other payload kind
// reports false.
func (p Payload) Field(key string) (any, bool) {
	obj, ok := p.value.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

func (p Payload) MarshalJSON() ([]byte, error) {
	return marshalCompact(p.value)
}

// marshalCompact encodes v without HTML escaping and without the trailing newline
// added by json.Encoder.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decodePayload validates body as UTF-8 and parses it as exactly one JSON document.
func decodePayload(body []byte) (Payload, error) {
	if offset, ok := invalidUTF8Offset(body); ok {
		return Payload{}, errors.WithStack(&PayloadError{
			kind:   ErrInvalidEncoding,
			reason: fmt.Sprintf("body is not valid UTF-8: invalid byte 0x%02x at offset %d", body[offset], offset),
		})
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Payload{}, errors.WithStack(&PayloadError{kind: ErrInvalidJSON, reason: describeSyntaxError(err)})
	}

	// Only whitespace may follow the document.
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, errors.WithStack(&PayloadError{
			kind:   ErrInvalidJSON,
			reason: fmt.Sprintf("extra data after JSON document at offset %d", dec.InputOffset()),
		})
	}

	return Payload{value: v}, nil
}

func invalidUTF8Offset(b []byte) (int, bool) {
	if utf8.Valid(b) {
		return 0, false
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, true
		}
		i += size
	}
	return 0, false
}

func describeSyntaxError(err error) string {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("%s at offset %d", syntaxErr.Error(), syntaxErr.Offset)
	case err == io.EOF, errors.Is(err, io.ErrUnexpectedEOF):
		return "unexpected end of JSON input"
	default:
		return err.Error()
	}
}
