//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"fastrider/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	service := jwt.NewService("test-secret")
	userID := uuid.New()

	t.Run("validates a token it issued", func(t *testing.T) {
		token, err := service.GenerateToken(userID, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := service.GenerateToken(userID, 1*time.Millisecond)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		claims, err := service.ValidateToken(token)
		require.Nil(t, claims)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret")
		token, err := other.GenerateToken(userID, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.Nil(t, claims)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		claims, err := service.ValidateToken("not.a.token")
		require.Nil(t, claims)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
