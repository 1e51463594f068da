package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edumanage_backend/internals/features/users/auth/model"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := hashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, checkPasswordHash(hash, "s3cret-pass"))
	assert.Error(t, checkPasswordHash(hash, "wrong-pass"))
}

func TestBuildAccessClaims(t *testing.T) {
	u := model.UserModel{
		UserID:       uuid.New(),
		UserFullName: "Jordan Smith",
		UserRole:     "MANAGER",
	}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	claims := buildAccessClaims(u, now)

	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, u.UserID.String(), claims["sub"])
	assert.Equal(t, u.UserID.String(), claims["user_id"])
	assert.Equal(t, "MANAGER", claims["role"])
	assert.Equal(t, now.Unix(), claims["iat"])
	assert.Equal(t, now.Add(accessTTLDefault).Unix(), claims["exp"])
}

func TestBuildRefreshClaims(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()

	claims := buildRefreshClaims(id, now)

	assert.Equal(t, "refresh", claims["typ"])
	assert.Equal(t, id.String(), claims["sub"])
	assert.Equal(t, now.Add(refreshTTLDefault).Unix(), claims["exp"])
}
