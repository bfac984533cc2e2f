package models

import "time"

// Post is a piece of user content. Owner holds the creator's UserName and is
// never reassigned after creation.
type Post struct {
	ID         string
	Title      string
	Content    string
	Owner      string
	CreatedAt  time.Time
	ModifiedAt time.Time
}
