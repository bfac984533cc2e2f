// Package auth implements token-based authentication and ownership checks.
//
// A request moves through the stages
//
//	Unauthenticated → TokenPresented → Verified → PrincipalResolved
//
// via ExtractRaw, Verifier.Verify and Resolve; Authenticator chains the three.
// Mutations on a post are then gated by AuthorizeMutation. Every function here
// works on explicit inputs (including "now") and immutable key material, so all
// of it is safe for concurrent use without locking.
package auth
