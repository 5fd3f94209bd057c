// File: internal/infra/adapters/nav/back.go
package nav

import (
	"strings"

	"voucher-pass/internal/domain/ports/adapter"
)

var _ adapter.Navigator = (*BackResolver)(nil)

// BackResolver keeps the back action on-site: only rooted single-slash
// paths pass through, anything else falls back to the configured target.
type BackResolver struct {
	fallback string
}

func NewBackResolver(fallback string) *BackResolver {
	if fallback == "" {
		fallback = "/"
	}
	return &BackResolver{fallback: fallback}
}

func (b *BackResolver) BackURL(requested string) string {
	if requested == "" {
		return b.fallback
	}
	// "//host" and "/\host" are treated as absolute by browsers.
	if !strings.HasPrefix(requested, "/") || strings.HasPrefix(requested, "//") {
		return b.fallback
	}
	if strings.ContainsAny(requested, "\\\r\n") {
		return b.fallback
	}
	return requested
}
