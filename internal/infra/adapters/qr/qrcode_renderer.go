// File: internal/infra/adapters/qr/qrcode_renderer.go
package qr

import (
	"context"
	"fmt"
	"strings"

	"voucher-pass/internal/domain"
	"voucher-pass/internal/domain/ports/adapter"

	qrcode "github.com/skip2/go-qrcode"
)

var _ adapter.QRSymbolRenderer = (*CodeRenderer)(nil)

// CodeRenderer encodes voucher codes as QR PNGs.
type CodeRenderer struct {
	level qrcode.RecoveryLevel
}

// NewCodeRenderer accepts "low" | "medium" | "high" | "highest";
// anything else falls back to medium.
func NewCodeRenderer(level string) *CodeRenderer {
	return &CodeRenderer{level: parseLevel(level)}
}

func parseLevel(s string) qrcode.RecoveryLevel {
	switch strings.ToLower(s) {
	case "low":
		return qrcode.Low
	case "high":
		return qrcode.High
	case "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// RenderPNG encodes data into a sizePx-square PNG. The size arrives
// straight from the layout formula and may be non-positive on narrow
// viewports; that is reported as domain.ErrInvalidQRSize, not clamped.
func (c *CodeRenderer) RenderPNG(_ context.Context, data string, sizePx int) ([]byte, error) {
	if data == "" {
		return nil, domain.ErrEmptyQRData
	}
	if sizePx <= 0 {
		return nil, domain.ErrInvalidQRSize
	}
	png, err := qrcode.Encode(data, c.level, sizePx)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}
