//go:build !integration

// File: internal/infra/links/codec_test.go
package links

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"voucher-pass/internal/domain"
	"voucher-pass/internal/domain/model"
	"voucher-pass/internal/infra/security"
)

const testKey = "unit-test-signing-key"

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec(testKey, 0, nil)
	bag := model.Params{
		model.ParamCode:   "VOU-1",
		model.ParamStatus: "expired",
		model.ParamMaxPax: "4",
	}
	tok, err := c.Mint(bag, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	got, err := c.Resolve(tok)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != len(bag) {
		t.Fatalf("bag has %d keys, want %d", len(got), len(bag))
	}
	for k, v := range bag {
		if got[k] != v {
			t.Errorf("bag[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestCodecEmptyBag(t *testing.T) {
	c := NewCodec(testKey, 0, nil)
	tok, err := c.Mint(nil, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	got, err := c.Resolve(tok)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Resolve = %v, want empty bag", got)
	}
}

func TestCodecRejectsTamperedToken(t *testing.T) {
	c := NewCodec(testKey, 0, nil)
	tok, err := c.Mint(model.Params{model.ParamCode: "VOU-1"}, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	tampered := tok[:len(tok)-2] + "xx"
	if _, err := c.Resolve(tampered); !errors.Is(err, domain.ErrInvalidLink) {
		t.Errorf("err = %v, want ErrInvalidLink", err)
	}
}

func TestCodecRejectsWrongKey(t *testing.T) {
	tok, err := NewCodec(testKey, 0, nil).Mint(model.Params{}, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := NewCodec("another-key", 0, nil).Resolve(tok); !errors.Is(err, domain.ErrInvalidLink) {
		t.Errorf("err = %v, want ErrInvalidLink", err)
	}
}

func TestCodecExpiredToken(t *testing.T) {
	c := NewCodec(testKey, 0, nil)
	tok, err := c.Mint(model.Params{}, -time.Second)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := c.Resolve(tok); !errors.Is(err, domain.ErrLinkExpired) {
		t.Errorf("err = %v, want ErrLinkExpired", err)
	}
}

func TestCodecMaxAgeCap(t *testing.T) {
	c := NewCodec(testKey, time.Nanosecond, nil)
	tok, err := c.Mint(model.Params{}, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := c.Resolve(tok); !errors.Is(err, domain.ErrLinkExpired) {
		t.Errorf("err = %v, want ErrLinkExpired", err)
	}
}

func TestCodecSealedBag(t *testing.T) {
	sealer, err := security.NewSealer("0123456789abcdef")
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	c := NewCodec(testKey, 0, sealer)
	tok, err := c.Mint(model.Params{model.ParamCode: "VOU-HIDDEN"}, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	// The claims segment must not leak the bag in cleartext.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments", len(parts))
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode claims: %v", err)
	}
	if strings.Contains(string(payload), "VOU-HIDDEN") {
		t.Error("sealed token leaks the voucher code in cleartext")
	}

	got, err := c.Resolve(tok)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got[model.ParamCode] != "VOU-HIDDEN" {
		t.Errorf("bag[code] = %q", got[model.ParamCode])
	}

	// A codec without the sealer cannot read the bag.
	if _, err := NewCodec(testKey, 0, nil).Resolve(tok); !errors.Is(err, domain.ErrInvalidLink) {
		t.Errorf("plain codec err = %v, want ErrInvalidLink", err)
	}
}
