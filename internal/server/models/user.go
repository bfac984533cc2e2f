// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is the authenticated principal. UserName is the canonical identifier:
// it is the token subject and the value recorded as a post's owner.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
