package grpc

import (
	"time"

	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bare token. The same token, with the bearer
// prefix, is also sent in the authorization response header.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Owner      string    `json:"owner"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type GetPostRequest struct {
	ID string `json:"id"`
}

type ListPostsRequest struct{}

type ListPostsResponse struct {
	Posts []Post `json:"posts"`
}

type UpdatePostRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DeletePostRequest struct {
	ID string `json:"id"`
}

type DeletePostResponse struct{}

func postFromModel(p *models.Post) *Post {
	return &Post{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Owner:      p.Owner,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
	}
}
