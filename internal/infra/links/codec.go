// File: internal/infra/links/codec.go
package links

import (
	"encoding/json"
	"errors"
	"time"

	"voucher-pass/internal/domain"
	"voucher-pass/internal/domain/model"
	"voucher-pass/internal/infra/security"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Codec mints and resolves signed voucher links. A minted token carries
// the whole parameter bag, so a shared link keeps rendering the same
// screen wherever it is opened. With a Sealer attached the bag travels
// encrypted instead of as readable claims.
type Codec struct {
	secret []byte
	maxAge time.Duration
	sealer *security.Sealer
}

// NewCodec builds a codec for HS256 tokens. maxAge, when positive, caps
// token lifetime on top of the per-token expiry. sealer may be nil.
func NewCodec(signingKey string, maxAge time.Duration, sealer *security.Sealer) *Codec {
	return &Codec{secret: []byte(signingKey), maxAge: maxAge, sealer: sealer}
}

type voucherClaims struct {
	Bag    model.Params `json:"bag,omitempty"`
	Sealed string       `json:"sealed,omitempty"`
	jwt.RegisteredClaims
}

// Mint signs the parameter bag into a token valid for ttl.
func (c *Codec) Mint(params model.Params, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := voucherClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ulid.Make().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   "voucher",
		},
	}
	if c.sealer != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return "", err
		}
		sealed, err := c.sealer.Seal(raw)
		if err != nil {
			return "", err
		}
		claims.Sealed = sealed
	} else {
		claims.Bag = params
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Resolve verifies tok and returns the parameter bag it carries.
// Expired tokens map to domain.ErrLinkExpired, everything else that
// fails verification to domain.ErrInvalidLink.
func (c *Codec) Resolve(tok string) (model.Params, error) {
	claims := &voucherClaims{}
	tkn, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrLinkExpired
		}
		return nil, domain.ErrInvalidLink
	}
	if c.maxAge > 0 && claims.IssuedAt != nil && time.Since(claims.IssuedAt.Time) > c.maxAge {
		return nil, domain.ErrLinkExpired
	}
	if claims.Sealed != "" {
		if c.sealer == nil {
			return nil, domain.ErrInvalidLink
		}
		raw, err := c.sealer.Open(claims.Sealed)
		if err != nil {
			return nil, domain.ErrInvalidLink
		}
		var bag model.Params
		if err := json.Unmarshal(raw, &bag); err != nil {
			return nil, domain.ErrInvalidLink
		}
		return bag, nil
	}
	if claims.Bag == nil {
		return model.Params{}, nil
	}
	return claims.Bag, nil
}
