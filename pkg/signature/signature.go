// Package signature verifies ElevenLabs webhook signatures.
//
// The header has the form "t=<unix>,v0=<hex>", where the hex digest is an
// HMAC-SHA256 over "<unix>.<raw body>" keyed with the shared webhook secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingSignature = errors.New("missing signature header")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrStaleTimestamp   = errors.New("signature timestamp outside tolerance")
)

const DefaultTolerance = 30 * time.Minute

type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret:    []byte(secret),
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
}

// WithNow replaces the clock. Used by tests.
func (v *Verifier) WithNow(now func() time.Time) *Verifier {
	v.now = now
	return v
}

func (v *Verifier) Verify(header string, body []byte) error {
	if header == "" {
		return ErrMissingSignature
	}

	ts, digest, err := parseHeader(header)
	if err != nil {
		return err
	}

	sent := time.Unix(ts, 0)
	if d := v.now().Sub(sent); d > v.tolerance || d < -v.tolerance {
		return ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(body)

	if !hmac.Equal(mac.Sum(nil), digest) {
		return ErrInvalidSignature
	}

	return nil
}

// Sign produces a header Verify accepts for the given body.
func (v *Verifier) Sign(at time.Time, body []byte) string {
	ts := strconv.FormatInt(at.Unix(), 10)

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(body)

	return "t=" + ts + ",v0=" + hex.EncodeToString(mac.Sum(nil))
}

func parseHeader(header string) (int64, []byte, error) {
	var tsPart, sigPart string
	for _, element := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(element), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			tsPart = value
		case "v0":
			sigPart = value
		}
	}

	if tsPart == "" || sigPart == "" {
		return 0, nil, ErrInvalidSignature
	}

	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return 0, nil, ErrInvalidSignature
	}

	digest, err := hex.DecodeString(sigPart)
	if err != nil {
		return 0, nil, ErrInvalidSignature
	}

	return ts, digest, nil
}
