package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification. Malformed,
// badly signed and expired tokens are deliberately indistinguishable to the
// caller.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified result of a token check: proof that the request is
// made on behalf of the given account.
type Identity struct {
	AccountID string
}

// TokenService issues and verifies signed identity tokens. Tokens carry a
// single subject claim (the account id) plus an expiration instant; there is no
// server-side session state and no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given secret. The
// secret and validity window are process-wide configuration, fixed for the
// lifetime of the process.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token for the given account id, expiring after the
// configured validity window. Tokens are never renewed or mutated.
func (s *TokenService) Issue(accountID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// Verify checks the signature and expiration of a presented token and returns
// the embedded identity. Verification is pure: no state is read or written.
func (s *TokenService) Verify(tokenStr string) (Identity, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{AccountID: claims.Subject}, nil
}
