package redaxios

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strings"
)

// Appender marks a body as multipart/form-like. Bodies exposing an append
// capability are passed through untouched instead of being JSON-encoded.
type Appender interface {
	Append(name, value string)
	Encode() string
}

// TextLike marks a body as blob-like: it can render itself to text and must
// not be JSON-encoded.
type TextLike interface {
	Text() (string, error)
}

// FormData is a minimal form body. It satisfies Appender so the encoder
// leaves it alone; the default content type negotiation is left to the
// transport or the caller, matching browser form submission.
type FormData struct {
	values url.Values
}

// NewFormData creates an empty form body.
func NewFormData() *FormData {
	return &FormData{values: url.Values{}}
}

// Append adds a name/value pair, keeping earlier values for the same name.
func (f *FormData) Append(name, value string) {
	f.values.Add(name, value)
}

// Encode renders the form as a URL-encoded string.
func (f *FormData) Encode() string {
	return f.values.Encode()
}

// encodeBody turns the (possibly transformed) body into a reader and records
// any internally computed content type into headers.
//
// The three-way capability test is preserved exactly: a non-nil value that is
// not raw text/bytes/reader and exposes neither an append capability nor a
// text capability is serialized to JSON with content-type application/json.
// Marshal failures propagate so the call fails before the transport is
// invoked.
func encodeBody(body any, headers Headers) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	case io.Reader:
		return b, nil
	case Appender:
		return strings.NewReader(b.Encode()), nil
	case TextLike:
		text, err := b.Text()
		if err != nil {
			return nil, err
		}
		return strings.NewReader(text), nil
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		headers.Set("content-type", "application/json")
		return bytes.NewReader(encoded), nil
	}
}

// emptyBody reports whether a transform return value counts as "nothing",
// in which case the current body is kept.
func emptyBody(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
