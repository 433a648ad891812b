package jwt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	ctx := context.Background()

	token, err := Generate(ctx, "user-42", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseUserID(ctx, token, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-42", userID)
}

func TestParseWrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := Generate(ctx, "user-42", "secret")
	require.NoError(t, err)

	_, err = ParseUserID(ctx, token, "other-secret")
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseUserID(context.Background(), "not-a-token", "secret")
	require.Error(t, err)
}

func TestParseTokenFromHeader(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	_, err = ParseTokenFromHeader(r)
	require.Error(t, err)

	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	token, err := ParseTokenFromHeader(r)
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = ParseTokenFromHeader(r)
	require.Error(t, err)
}
