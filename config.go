package redaxios

import (
	"net/url"
	"sort"
)

// Transform mutates or replaces a request body before encoding. It receives
// the current body and the resolved headers; returning nil (or an empty
// string) leaves the current body unchanged.
type Transform func(body any, headers Headers) any

// ValidateStatus reports whether a raw status code counts as success.
type ValidateStatus func(status int) bool

// ParamsSerializer renders query parameters into a raw query string.
type ParamsSerializer func(params map[string]string) string

// Config enumerates every recognized request option. A Config is immutable
// per call: resolution copies values from instance defaults and the call-site
// override into a fresh record, so mutating either afterwards does not affect
// an in-flight request.
//
// Extra is a generic passthrough slot for transport-specific options; it is
// merged recursively with the same algorithm as the rest of the record.
type Config struct {
	URL              string
	Method           string
	BaseURL          string
	Headers          Headers
	Params           map[string]string
	ParamsSerializer ParamsSerializer
	Data             any
	ResponseType     string
	WithCredentials  bool
	Auth             string
	XSRFCookieName   string
	XSRFHeaderName   string
	ValidateStatus   ValidateStatus
	TransformRequest []Transform
	Fetch            Fetch
	Extra            map[string]any
}

// Clone returns a deep-enough copy: maps and slices are copied, function
// values and Data are shared.
func (c *Config) Clone() *Config {
	if c == nil {
		return &Config{}
	}
	out := *c
	if c.Headers != nil {
		out.Headers = c.Headers.Clone()
	}
	if c.Params != nil {
		out.Params = make(map[string]string, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	if c.TransformRequest != nil {
		out.TransformRequest = append([]Transform(nil), c.TransformRequest...)
	}
	if c.Extra != nil {
		out.Extra = mergeValues(c.Extra, nil, false).(map[string]any)
	}
	return &out
}

// resolveConfig merges instance defaults with a call-site override into the
// single resolved configuration used for the remainder of one call. Scalars
// and functions from the override replace the base outright, header maps
// merge with the override winning, transform chains concatenate and the Extra
// passthrough merges recursively. Nil inputs behave as empty configurations.
func resolveConfig(base, override *Config) *Config {
	out := base.Clone()
	if override == nil {
		return out
	}
	if override.URL != "" {
		out.URL = override.URL
	}
	if override.Method != "" {
		out.Method = override.Method
	}
	if override.BaseURL != "" {
		out.BaseURL = override.BaseURL
	}
	if override.Headers != nil {
		out.Headers = mergeHeaders(out.Headers, override.Headers)
	}
	if override.Params != nil {
		if out.Params == nil {
			out.Params = make(map[string]string, len(override.Params))
		}
		for k, v := range override.Params {
			out.Params[k] = v
		}
	}
	if override.ParamsSerializer != nil {
		out.ParamsSerializer = override.ParamsSerializer
	}
	if override.Data != nil {
		out.Data = override.Data
	}
	if override.ResponseType != "" {
		out.ResponseType = override.ResponseType
	}
	if override.WithCredentials {
		out.WithCredentials = true
	}
	if override.Auth != "" {
		out.Auth = override.Auth
	}
	if override.XSRFCookieName != "" {
		out.XSRFCookieName = override.XSRFCookieName
	}
	if override.XSRFHeaderName != "" {
		out.XSRFHeaderName = override.XSRFHeaderName
	}
	if override.ValidateStatus != nil {
		out.ValidateStatus = override.ValidateStatus
	}
	if len(override.TransformRequest) > 0 {
		out.TransformRequest = append(out.TransformRequest, override.TransformRequest...)
	}
	if override.Fetch != nil {
		out.Fetch = override.Fetch
	}
	if override.Extra != nil {
		out.Extra = mergeValues(out.Extra, override.Extra, false).(map[string]any)
	}
	return out
}

// defaultSerializeParams encodes params as a sorted query string.
func defaultSerializeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, params[k])
	}
	return values.Encode()
}
