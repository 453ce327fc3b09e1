package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// signatureVersion is the fixed version marker Slack prefixes to both the
// signing string and the signature header.
const signatureVersion = "v0"

var (
	ErrMissingSignature = errors.New("signature header is required")
	ErrMissingTimestamp = errors.New("timestamp header is required")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Verifier validates Slack request signatures. It is safe for concurrent use.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier from the workspace signing secret.
// An empty secret is rejected here so misconfiguration fails at startup
// rather than on the first request.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is empty")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Sign computes the versioned signature over the exact raw body bytes:
// HMAC-SHA256 over "v0:{timestamp}:{body}", hex encoded, prefixed "v0=".
func (v *Verifier) Sign(body []byte, timestamp string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(signatureVersion + ":" + timestamp + ":"))
	mac.Write(body)
	return signatureVersion + "=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a supplied signature against the body and timestamp.
// The comparison is constant time. Errors are sentinels so callers can
// reject with a reason without leaking verification detail.
func (v *Verifier) Verify(body []byte, timestamp, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	if timestamp == "" {
		return ErrMissingTimestamp
	}

	expected := v.Sign(body, timestamp)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
