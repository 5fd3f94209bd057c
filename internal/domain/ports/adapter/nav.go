// File: internal/domain/ports/adapter/nav.go
package adapter

// Navigator decides where the voucher screen's back action points.
// Implementations must return a safe same-site target for any input.
type Navigator interface {
	BackURL(requested string) string
}
