// Package common contains shared constants and sentinel errors used across
// GophPosts components.
package common

const (
	// AuthorizationHeaderName is the gRPC metadata key carrying the bearer
	// credential. gRPC lower-cases metadata keys on the wire.
	AuthorizationHeaderName = "authorization"

	// BearerPrefix marks the credential inside the authorization header.
	// Matching is case-sensitive.
	BearerPrefix = "Bearer "
)
