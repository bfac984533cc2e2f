package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

// PrincipalLookup finds a user by UserName. It returns common.ErrorNotFound
// when there is none; users.Repository.GetUserByLogin fits.
type PrincipalLookup func(ctx context.Context, userName string) (*models.User, error)

// Resolve maps a verified subject to its stored principal. An unknown subject
// yields common.ErrPrincipalNotFound, which callers treat as unauthenticated.
func Resolve(ctx context.Context, subject string, lookup PrincipalLookup) (*models.User, error) {
	user, err := lookup(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("resolve principal: %w", err)
	}
	if user == nil {
		return nil, common.ErrPrincipalNotFound
	}
	return user, nil
}
