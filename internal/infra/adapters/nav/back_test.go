//go:build !integration

package nav

import "testing"

func TestBackResolver(t *testing.T) {
	r := NewBackResolver("/wallet")

	cases := []struct {
		name      string
		requested string
		want      string
	}{
		{"empty falls back", "", "/wallet"},
		{"rooted path passes", "/events/42", "/events/42"},
		{"root passes", "/", "/"},
		{"relative rejected", "events/42", "/wallet"},
		{"protocol-relative rejected", "//evil.example/x", "/wallet"},
		{"absolute url rejected", "https://evil.example/x", "/wallet"},
		{"backslash rejected", "/\\evil.example", "/wallet"},
		{"header injection rejected", "/ok\r\nSet-Cookie: x", "/wallet"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.BackURL(tc.requested); got != tc.want {
				t.Errorf("BackURL(%q) = %q, want %q", tc.requested, got, tc.want)
			}
		})
	}
}

func TestBackResolverEmptyFallback(t *testing.T) {
	r := NewBackResolver("")
	if got := r.BackURL(""); got != "/" {
		t.Errorf("BackURL() = %q, want /", got)
	}
}
