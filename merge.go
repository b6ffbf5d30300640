package redaxios

import "strings"

// mergeValues recursively merges an override value into a base value and
// returns the result without mutating either input.
//
// Sequences concatenate: when base is a []any the result is base followed by
// override. Maps merge entry by entry: base entries are copied first
// (lower-casing keys when lowerCase is set), then each override entry either
// merges recursively into an existing entry (map overrides always, sequence
// overrides onto an existing sequence) or replaces it outright. The
// lower-case flag propagates into the recursion only for the "headers" key,
// so header-name case variants collapse while every other nested map keeps
// its key casing.
//
// Nil inputs behave as empty values; there are no error conditions.
func mergeValues(base, override any, lowerCase bool) any {
	if baseSeq, ok := base.([]any); ok {
		out := make([]any, 0, len(baseSeq)+1)
		out = append(out, baseSeq...)
		if overrideSeq, ok := override.([]any); ok {
			return append(out, overrideSeq...)
		}
		if override != nil {
			// Mirrors sequence concatenation with a scalar tail.
			return append(out, override)
		}
		return out
	}

	baseMap, _ := base.(map[string]any)
	overrideMap, _ := override.(map[string]any)

	out := make(map[string]any, len(baseMap)+len(overrideMap))
	for k, v := range baseMap {
		if lowerCase {
			k = strings.ToLower(k)
		}
		out[k] = v
	}
	for k, v := range overrideMap {
		if lowerCase {
			k = strings.ToLower(k)
		}
		existing, present := out[k]
		if present && mergeable(existing, v) {
			out[k] = mergeValues(existing, v, strings.EqualFold(k, "headers"))
			continue
		}
		out[k] = v
	}
	return out
}

// mergeable reports whether a key conflict merges recursively instead of
// replacing: override maps merge into whatever is there, and sequence
// overrides concatenate onto an existing sequence.
func mergeable(existing, override any) bool {
	if _, ok := override.(map[string]any); ok {
		return true
	}
	if _, ok := override.([]any); ok {
		_, existingSeq := existing.([]any)
		return existingSeq
	}
	return false
}
