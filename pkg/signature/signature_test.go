package signature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVerifyValid(t *testing.T) {
	v := NewVerifier("shared-secret")
	body := []byte(`{"conversation_id":"conv-1","transcript":"hello"}`)

	header := v.Sign(time.Now(), body)
	require.NoError(t, v.Verify(header, body))
}

func TestVerifyTamperedBody(t *testing.T) {
	v := NewVerifier("shared-secret")
	body := []byte(`{"conversation_id":"conv-1"}`)

	header := v.Sign(time.Now(), body)
	err := v.Verify(header, []byte(`{"conversation_id":"conv-2"}`))
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyWrongSecret(t *testing.T) {
	body := []byte(`{}`)
	header := NewVerifier("secret-a").Sign(time.Now(), body)

	err := NewVerifier("secret-b").Verify(header, body)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMissingHeader(t *testing.T) {
	v := NewVerifier("shared-secret")
	err := v.Verify("", []byte(`{}`))
	require.ErrorIs(t, err, ErrMissingSignature)
}

func TestVerifyStaleTimestamp(t *testing.T) {
	v := NewVerifier("shared-secret")
	body := []byte(`{}`)

	header := v.Sign(time.Now().Add(-time.Hour), body)
	err := v.Verify(header, body)
	require.ErrorIs(t, err, ErrStaleTimestamp)
}

func TestVerifyFutureTimestampWithinTolerance(t *testing.T) {
	v := NewVerifier("shared-secret")
	body := []byte(`{}`)

	header := v.Sign(time.Now().Add(5*time.Minute), body)
	require.NoError(t, v.Verify(header, body))
}

func TestVerifyMalformedHeader(t *testing.T) {
	v := NewVerifier("shared-secret")

	for _, header := range []string{
		"garbage",
		"t=abc,v0=00ff",
		"t=1700000000",
		"v0=00ff",
		"t=1700000000,v0=zz",
	} {
		err := v.Verify(header, []byte(`{}`))
		require.Error(t, err, "header %q", header)
	}
}
