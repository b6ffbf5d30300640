package redaxios

import (
	"encoding/json"
	"io"

	"github.com/tidwall/gjson"
)

// Response is the uniform result shape for every call attempt, produced
// exactly once per attempt whether the call succeeds or fails status
// validation. It is a superset of the transport's raw result: every raw
// field is copied onto it before the body is decoded.
type Response struct {
	// Status is the HTTP status code (e.g. 200, 404).
	Status int

	// StatusText is the reason phrase for Status.
	StatusText string

	// OK mirrors the transport's own success flag (2xx).
	OK bool

	// Redirected reports whether the transport followed a redirect.
	Redirected bool

	// URL is the effective URL after the exchange.
	URL string

	// Type is the transport's response type classification.
	Type string

	// Headers holds the response headers, lower-cased names canonical.
	Headers Headers

	// Config is the resolved request configuration, frozen at dispatch.
	Config *Config

	// ResponseType is the declared decode mode ("text" unless configured).
	ResponseType string

	// Data is the decoded payload: the parsed JSON value when the body
	// parses as JSON, the body text otherwise, or the raw byte stream when
	// ResponseType is "stream".
	Data any

	// Body is the raw byte stream. Only meaningful for "stream" responses;
	// otherwise it has been consumed during decoding.
	Body io.ReadCloser

	// BodyUsed reports whether the body stream has been consumed.
	BodyUsed bool

	raw []byte
}

// newResponse copies every raw transport field onto a fresh Response.
func newResponse(raw *RawResponse, cfg *Config, responseType string) *Response {
	return &Response{
		Status:       raw.Status,
		StatusText:   raw.StatusText,
		OK:           raw.OK,
		Redirected:   raw.Redirected,
		URL:          raw.URL,
		Type:         raw.Type,
		Headers:      raw.Headers,
		Config:       cfg,
		ResponseType: responseType,
		Body:         raw.Body,
		BodyUsed:     raw.BodyUsed,
	}
}

// decodeBody fills Data according to ResponseType. Stream responses hand the
// raw byte stream through untouched. Everything else decodes as text and
// then attempts a JSON parse on top; if parsing succeeds Data becomes the
// parsed value, otherwise it keeps the text. Decode-stage errors are
// swallowed: Data simply retains whatever was set before the failure.
func (r *Response) decodeBody() {
	if r.ResponseType == "stream" {
		r.Data = r.Body
		return
	}
	if r.Body == nil {
		return
	}
	defer r.Body.Close()

	text, err := io.ReadAll(r.Body)
	if err != nil {
		return
	}
	r.BodyUsed = true
	r.raw = text
	r.Data = string(text)

	var parsed any
	if err := json.Unmarshal(text, &parsed); err == nil {
		r.Data = parsed
	}
}

// Text returns the decoded body text.
func (r *Response) Text() string {
	return string(r.raw)
}

// Bytes returns the decoded body bytes.
func (r *Response) Bytes() []byte {
	return r.raw
}

// JSON unmarshals the body into v. Unlike Data's opportunistic parse, a
// malformed body surfaces the unmarshal error.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.raw, v)
}

// Get evaluates a gjson path expression against the body, e.g.
// resp.Get("items.0.name").
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// GetHeader returns the named response header, compared case-insensitively.
func (r *Response) GetHeader(name string) string {
	return r.Headers.Get(name)
}
