package auth

import (
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/gophposts/internal/common"
)

// MinKeySize is the shortest HMAC key accepted for HS256, in bytes.
const MinKeySize = 32

// SigningKey is the HMAC secret shared by Codec and Verifier. It is built once
// at startup and never changes.
type SigningKey struct {
	b []byte
}

// NewSigningKey decodes a standard base64 secret.
func NewSigningKey(encoded string) (SigningKey, error) {
	if encoded == "" {
		return SigningKey{}, common.ErrMissingSecret
	}
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return SigningKey{}, fmt.Errorf("decode signing secret: %w", err)
	}
	return SigningKeyFromBytes(b)
}

// SigningKeyFromBytes copies raw key material.
func SigningKeyFromBytes(raw []byte) (SigningKey, error) {
	if len(raw) < MinKeySize {
		return SigningKey{}, fmt.Errorf("%w: %d bytes, need at least %d", common.ErrWeakSecret, len(raw), MinKeySize)
	}
	b := make([]byte, len(raw))
	copy(b, raw)
	return SigningKey{b: b}, nil
}

func (k SigningKey) String() string { return "[REDACTED]" }

func (k SigningKey) GoString() string { return "[REDACTED]" }
