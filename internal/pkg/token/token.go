// Package token reads claims out of backend-issued bearer tokens. The
// signature is the backend's to verify; locally we only care when the token
// says it stops working.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryOf returns the token's exp claim. Tokens that do not parse or carry
// no exp fall back to now + fallback.
func ExpiryOf(tokenString string, fallback time.Duration, now time.Time) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return now.Add(fallback)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return now.Add(fallback)
	}
	return exp.Time
}
