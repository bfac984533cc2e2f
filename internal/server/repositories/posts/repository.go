// Package posts declares and implements the persisted resource store.
package posts

import (
	"context"

	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) error

	// FindByID returns common.ErrorNotFound when there is no such post.
	FindByID(ctx context.Context, id string) (*models.Post, error)

	// FindByIDForUpdate is FindByID that also locks the row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*models.Post, error)

	// List returns all posts, newest first.
	List(ctx context.Context) ([]*models.Post, error)

	// Update writes title, content and modified time. The owner column is
	// never touched.
	Update(ctx context.Context, post *models.Post) error

	Delete(ctx context.Context, id string) error
}
