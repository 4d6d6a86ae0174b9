package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ToProfile(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "$2a$10$hashed",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	profile := user.ToProfile()
	require.NotNil(t, profile)

	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, user.Email, profile.Email)
	assert.Equal(t, user.CreatedAt, profile.CreatedAt)
	assert.Equal(t, user.UpdatedAt, profile.UpdatedAt)
}

func TestUser_ToProfileNil(t *testing.T) {
	var user *User

	assert.Nil(t, user.ToProfile())
}

func TestProfile_JSONNeverLeaksCredentials(t *testing.T) {
	profile := (&User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "$2a$10$hashed",
	}).ToProfile()

	raw, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"email":"user@example.com"`)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")
}
