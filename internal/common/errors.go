// Package common defines shared constants and sentinel errors used across
// the server layers of GophPosts. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Token verification failures. All of them mean "unauthenticated".
	ErrTokenMalformed   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrMissingClaims    = errors.New("missing token claims")

	// Request authentication failures.
	ErrMissingToken      = errors.New("missing bearer token")
	ErrPrincipalNotFound = errors.New("principal not found")

	// Configuration errors; fatal at startup.
	ErrMissingSecret = errors.New("signing secret is not configured")
	ErrWeakSecret    = errors.New("signing secret is too short")
	ErrInvalidTTL    = errors.New("token validity duration must be at least one second")
)

// IsAuthenticationError reports whether err means the caller could not be
// authenticated, as opposed to being forbidden or asking for a missing resource.
func IsAuthenticationError(err error) bool {
	for _, target := range []error{
		ErrTokenMalformed,
		ErrInvalidSignature,
		ErrTokenExpired,
		ErrMissingClaims,
		ErrMissingToken,
		ErrPrincipalNotFound,
		ErrorUnauthorized,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
