package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	jwt := NewJWT("test-secret")

	tokenString, err := jwt.GenerateToken("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	email, err := jwt.ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestJWT_ParseToken_WrongSecret(t *testing.T) {
	tokenString, err := NewJWT("secret-one").GenerateToken("user@example.com")
	require.NoError(t, err)

	_, err = NewJWT("secret-two").ParseToken(tokenString)
	assert.Error(t, err)
}

func TestJWT_ParseToken_Garbage(t *testing.T) {
	_, err := NewJWT("test-secret").ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_ParseToken_EmptyEmail(t *testing.T) {
	jwt := NewJWT("test-secret")

	tokenString, err := jwt.GenerateToken("")
	require.NoError(t, err)

	_, err = jwt.ParseToken(tokenString)
	assert.Error(t, err)
}
