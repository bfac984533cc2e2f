// Package users declares and implements the persisted principal store.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

type Repository interface {
	// Create stores a new user and fills in ID and CreatedAt. A taken
	// username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns common.ErrorNotFound when no user has that name.
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
}
