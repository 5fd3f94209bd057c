//go:build !integration

package qr

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"voucher-pass/internal/domain"
)

func TestRenderPNGProducesSquarePNG(t *testing.T) {
	r := NewCodeRenderer("medium")
	b, err := r.RenderPNG(context.Background(), "VOU-992-AA", 180)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 180 || cfg.Height != 180 {
		t.Errorf("PNG is %dx%d, want 180x180", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGRejectsEmptyData(t *testing.T) {
	r := NewCodeRenderer("medium")
	if _, err := r.RenderPNG(context.Background(), "", 200); !errors.Is(err, domain.ErrEmptyQRData) {
		t.Errorf("err = %v, want ErrEmptyQRData", err)
	}
}

func TestRenderPNGRejectsNonPositiveSize(t *testing.T) {
	r := NewCodeRenderer("medium")
	for _, size := range []int{0, -20} {
		if _, err := r.RenderPNG(context.Background(), "VOU-1", size); !errors.Is(err, domain.ErrInvalidQRSize) {
			t.Errorf("size %d: err = %v, want ErrInvalidQRSize", size, err)
		}
	}
}

func TestParseLevelFallsBackToMedium(t *testing.T) {
	for _, s := range []string{"", "MEDIUM", "weird"} {
		r := NewCodeRenderer(s)
		if _, err := r.RenderPNG(context.Background(), "x", 64); err != nil {
			t.Errorf("level %q: RenderPNG failed: %v", s, err)
		}
	}
}
