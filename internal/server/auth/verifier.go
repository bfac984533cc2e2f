package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// VerifyError is a classified verification failure. Reason is one of
// common.ErrTokenMalformed, common.ErrInvalidSignature, common.ErrTokenExpired
// or common.ErrMissingClaims, and errors.Is matches it.
type VerifyError struct {
	Reason error
	Err    error
}

func (e *VerifyError) Error() string {
	if e.Err == nil {
		return e.Reason.Error()
	}
	return e.Reason.Error() + ": " + e.Err.Error()
}

func (e *VerifyError) Unwrap() error { return e.Reason }

// Code is a short, log-friendly name of the failure class.
func (e *VerifyError) Code() string {
	switch e.Reason {
	case common.ErrTokenMalformed:
		return "malformed"
	case common.ErrInvalidSignature:
		return "invalid_signature"
	case common.ErrTokenExpired:
		return "expired"
	case common.ErrMissingClaims:
		return "missing_claims"
	default:
		return "unknown"
	}
}

// Verifier checks tokens produced by Codec.
type Verifier struct {
	key    SigningKey
	parser *jwt.Parser
}

func NewVerifier(key SigningKey) *Verifier {
	return &Verifier{
		key: key,
		// Time-based claims are checked by Verify against the caller's clock.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Verify returns the token subject, or a *VerifyError for the first fault in
// the order structure, signature, expiry, claims. A token is expired once now
// reaches exp.
func (v *Verifier) Verify(raw string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := v.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.key.b, nil
	})
	if err != nil {
		return "", classify(err)
	}

	if claims.ExpiresAt == nil {
		return "", &VerifyError{Reason: common.ErrMissingClaims, Err: errors.New("exp")}
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return "", &VerifyError{Reason: common.ErrTokenExpired}
	}
	if claims.Subject == "" {
		return "", &VerifyError{Reason: common.ErrMissingClaims, Err: errors.New("sub")}
	}

	return claims.Subject, nil
}

func classify(err error) *VerifyError {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return &VerifyError{Reason: common.ErrInvalidSignature, Err: err}
	default:
		return &VerifyError{Reason: common.ErrTokenMalformed, Err: err}
	}
}
