package auth

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var t0 = time.Unix(1_700_000_000, 0)

func testKey(t *testing.T, fill byte) SigningKey {
	t.Helper()
	k, err := SigningKeyFromBytes(bytes.Repeat([]byte{fill}, MinKeySize))
	if err != nil {
		t.Fatalf("SigningKeyFromBytes: %v", err)
	}
	return k
}

// signRaw signs arbitrary claims, bypassing Codec's input checks.
func signRaw(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return tok
}
