package domain

import "errors"

var (
	// Collaborator-boundary errors. The presentation core itself is total
	// (every bag, however malformed, still renders), so errors only exist
	// at the QR and navigation adapters.
	ErrEmptyQRData   = errors.New("qr data is empty")
	ErrInvalidQRSize = errors.New("qr size must be positive")
	ErrInvalidLink   = errors.New("voucher link is invalid")
	ErrLinkExpired   = errors.New("voucher link has expired")
)
