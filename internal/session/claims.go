package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is the client-visible part of the bearer token's claims.
// It is read without signature verification and is used purely for
// display and diagnostics; only the server decides whether a token is
// actually valid.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry claim lies in the past.
// Tokens without an expiry claim never report expired here.
func (i TokenInfo) Expired() bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(time.Now())
}

// Claims peeks at the held token's JWT claims. It returns false when no
// token is held or the token is not a parseable JWT (opaque session
// tokens are also accepted by the backend contract).
func (s *Store) Claims() (TokenInfo, bool) {
	if s.token == "" {
		return TokenInfo{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.token, &claims); err != nil {
		return TokenInfo{}, false
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, true
}
