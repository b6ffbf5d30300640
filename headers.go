package redaxios

import "strings"

// Headers is a case-insensitive header collection. Lower-cased names are the
// canonical form so duplicate-but-differently-cased entries collapse into one.
type Headers map[string]string

// Set stores a header under its canonical lower-cased name.
func (h Headers) Set(name, value string) {
	h[strings.ToLower(name)] = value
}

// Get returns the value stored under name, compared case-insensitively.
func (h Headers) Get(name string) string {
	return h[strings.ToLower(name)]
}

// Has reports whether a header with the given name is present.
func (h Headers) Has(name string) bool {
	_, ok := h[strings.ToLower(name)]
	return ok
}

// Clone returns a copy with all names folded to lower case.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for k, v := range h {
		out[strings.ToLower(k)] = v
	}
	return out
}

// mergeHeaders combines base and override into a fresh collection using the
// case-folding merge, so override entries win over same-named base entries
// regardless of case. Built fresh per request; neither input is mutated.
func mergeHeaders(base, override Headers) Headers {
	out := make(Headers, len(base)+len(override))
	for k, v := range base {
		out[strings.ToLower(k)] = v
	}
	for k, v := range override {
		out[strings.ToLower(k)] = v
	}
	return out
}
