// File: internal/infra/security/sealer.go
package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Sealer hides voucher parameter bags carried inside shareable links.
// AES-GCM (AEAD) with a random nonce per payload; output is URL-safe
// base64 so sealed values can ride in query strings and JWT claims.
type Sealer struct {
	gcm cipher.AEAD
}

// NewSealer constructs an AES-GCM sealer.
// Key must be 16, 24, or 32 bytes (AES-128/192/256).
func NewSealer(key string) (*Sealer, error) {
	k := []byte(key)
	n := len(k)
	if n != 16 && n != 24 && n != 32 {
		return nil, fmt.Errorf("seal key must be 16, 24, or 32 bytes; got %d", n)
	}
	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}
	return &Sealer{gcm: gcm}, nil
}

// Seal returns base64url-encoded ciphertext. Format: base64url(nonce || ciphertext).
func (s *Sealer) Seal(plaintext []byte) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}
	ct := s.gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// Open accepts output of Seal and returns the original payload.
func (s *Sealer) Open(sealed string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	ns := s.gcm.NonceSize()
	if len(data) < ns {
		return nil, fmt.Errorf("sealed payload too short")
	}
	nonce, ct := data[:ns], data[ns:]
	pt, err := s.gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("gcm open: %w", err)
	}
	return pt, nil
}
