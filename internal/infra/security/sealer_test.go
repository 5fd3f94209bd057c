//go:build !integration

package security

import (
	"strings"
	"testing"
)

func TestSealerRoundTrip(t *testing.T) {
	s, err := NewSealer("0123456789abcdef") // 16 bytes
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	sealed, err := s.Seal([]byte(`{"voucherCode":"VOU-1"}`))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if strings.ContainsAny(sealed, "+/=") {
		t.Errorf("sealed value %q is not URL-safe", sealed)
	}
	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(got) != `{"voucherCode":"VOU-1"}` {
		t.Errorf("Open = %q", got)
	}
}

func TestSealerRejectsBadKeyLength(t *testing.T) {
	if _, err := NewSealer("short"); err == nil {
		t.Fatal("expected error for 5-byte key")
	}
}

func TestSealerWrongKeyFails(t *testing.T) {
	a, _ := NewSealer("0123456789abcdef")
	b, _ := NewSealer("fedcba9876543210")
	sealed, err := a.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := b.Open(sealed); err == nil {
		t.Fatal("expected open with wrong key to fail")
	}
}

func TestSealerTruncatedPayloadFails(t *testing.T) {
	s, _ := NewSealer("0123456789abcdef")
	if _, err := s.Open("AAAA"); err == nil {
		t.Fatal("expected open of truncated payload to fail")
	}
}
