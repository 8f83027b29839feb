package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestGenerateTokenAndValidate(t *testing.T) {
	token, err := GenerateToken(42, testSecret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ValidateToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	_, err := GenerateToken(1, "", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, testSecret, time.Hour)
	assert.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, testSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ValidateToken("", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
