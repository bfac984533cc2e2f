package memory

import (
	"context"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/google/uuid"
)

type UsersRepository struct {
	s *Store
}

func (r *UsersRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.s.now()
	stored.PasswordHash = append([]byte(nil), user.PasswordHash...)
	r.s.users[stored.UserName] = stored

	out := stored
	return &out, nil
}

func (r *UsersRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
