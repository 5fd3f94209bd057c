//go:build !integration

package web

import (
	"context"
	"time"

	"voucher-pass/internal/config"
	"voucher-pass/internal/domain/ports/adapter"
	"voucher-pass/internal/infra/adapters/nav"
	qrr "voucher-pass/internal/infra/adapters/qr"
	"voucher-pass/internal/infra/links"
	"voucher-pass/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// --- Mock collaborators (ports) ---

type mockQRRenderer struct {
	adapter.QRSymbolRenderer // embed interface for forward compatibility
	err                      error
	lastData                 string
	lastSize                 int
}

func (m *mockQRRenderer) RenderPNG(_ context.Context, data string, sizePx int) ([]byte, error) {
	m.lastData, m.lastSize = data, sizePx
	if m.err != nil {
		return nil, m.err
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

type mockLimiter struct {
	allow   bool
	err     error
	calls   int
	lastKey string
}

func (m *mockLimiter) Allow(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	m.calls++
	m.lastKey = key
	return m.allow, m.err
}

// --- Test helpers ---

func testConfig() *config.Config {
	return &config.Config{
		Render:    config.RenderConfig{ViewportWidth: 360, BackURL: "/"},
		QR:        config.QRConfig{Level: "medium"},
		RateLimit: config.RateLimitConfig{Limit: 10, Window: time.Minute},
	}
}

// newTestRouter builds a router around the real use case and back
// resolver. Nil collaborators fall back to the production QR renderer
// and no limiter.
func newTestRouter(cfg *config.Config, qr adapter.QRSymbolRenderer, codec *links.Codec, lim Limiter) *chi.Mux {
	logger := zerolog.Nop()
	if cfg == nil {
		cfg = testConfig()
	}
	if qr == nil {
		qr = qrr.NewCodeRenderer(cfg.QR.Level)
	}
	srv := NewServer(
		usecase.NewViewUseCase(&logger),
		qr,
		nav.NewBackResolver(cfg.Render.BackURL),
		codec,
		lim,
		"local",
		cfg,
		&logger,
	)
	return srv.Routes()
}
