// Package auth handles the bearer token the back office presents upstream.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes a bearer token as far as it can be read locally.
// The back office never validates or refreshes the token; the property API
// owns verification, and a rejected token surfaces as a 401 upstream error.
type TokenInfo struct {
	Subject   string
	ExpiresAt *time.Time
	Expired   bool
	Opaque    bool
}

// Inspect parses the token without verifying its signature so that startup
// logs can say who the office is acting as and whether the token already
// looks expired. Tokens that are not JWTs are reported as opaque.
func Inspect(token string) TokenInfo {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{Opaque: true}
	}

	info := TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
		info.Expired = t.Before(time.Now())
	}
	return info
}
