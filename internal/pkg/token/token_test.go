//go:build unit

package token_test

import (
	"testing"
	"time"

	"ecocollect/internal/pkg/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiryOf(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fallback := 24 * time.Hour

	t.Run("reads the exp claim", func(t *testing.T) {
		exp := now.Add(2 * time.Hour)
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u-2",
			"exp": exp.Unix(),
		}).SignedString([]byte("backend-secret"))
		require.NoError(t, err)

		got := token.ExpiryOf(signed, fallback, now)
		assert.Equal(t, exp.Unix(), got.Unix())
	})

	t.Run("falls back when the token has no exp", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u-2",
		}).SignedString([]byte("backend-secret"))
		require.NoError(t, err)

		got := token.ExpiryOf(signed, fallback, now)
		assert.Equal(t, now.Add(fallback), got)
	})

	t.Run("falls back on garbage", func(t *testing.T) {
		got := token.ExpiryOf("not-a-jwt", fallback, now)
		assert.Equal(t, now.Add(fallback), got)
	})
}
