package cookies

import "testing"

func TestValue(t *testing.T) {
	tests := []struct {
		name         string
		cookieString string
		cookie       string
		want         string
		wantOK       bool
	}{
		{"first cookie", "token=abc; other=x", "token", "abc", true},
		{"middle cookie", "a=1; token=abc; b=2", "token", "abc", true},
		{"last cookie", "a=1; token=abc", "token", "abc", true},
		{"url encoded value", "token=a%20b%3Dc", "token", "a b=c", true},
		{"absent cookie", "a=1; b=2", "token", "", false},
		{"empty value", "token=; a=1", "token", "", true},
		{"empty string", "", "token", "", false},
		{"empty name", "token=abc", "", "", false},
		{"name is suffix of another", "xtoken=nope; token=yes", "token", "yes", true},
		{"bad percent escape", "token=%zz", "token", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Value(tt.cookieString, tt.cookie)
			if ok != tt.wantOK {
				t.Fatalf("Value(%q, %q) ok = %v, want %v", tt.cookieString, tt.cookie, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Value(%q, %q) = %q, want %q", tt.cookieString, tt.cookie, got, tt.want)
			}
		})
	}
}
