// Package cookies extracts values from a document.cookie-shaped string
// ("name1=value1; name2=value2").
package cookies

import (
	"net/url"
	"regexp"
)

// Value scans cookieString for the named cookie with the pattern
// (^|; )<name>=([^;]*) and returns its URL-decoded value. The second return
// is false when the cookie is absent or its value fails to decode.
func Value(cookieString, name string) (string, bool) {
	if cookieString == "" || name == "" {
		return "", false
	}

	pattern, err := regexp.Compile(`(^|; )` + regexp.QuoteMeta(name) + `=([^;]*)`)
	if err != nil {
		return "", false
	}

	match := pattern.FindStringSubmatch(cookieString)
	if match == nil {
		return "", false
	}

	decoded, err := url.QueryUnescape(match[2])
	if err != nil {
		return "", false
	}
	return decoded, true
}
