package memory

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

type PostsRepository struct {
	s *Store
}

func (r *PostsRepository) Create(ctx context.Context, post *models.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[post.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.posts[post.ID] = *post
	return nil
}

func (r *PostsRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

// FindByIDForUpdate is FindByID; Store.WithinTx provides the isolation.
func (r *PostsRepository) FindByIDForUpdate(ctx context.Context, id string) (*models.Post, error) {
	return r.FindByID(ctx, id)
}

func (r *PostsRepository) List(ctx context.Context) ([]*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	result := make([]*models.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		p := p
		result = append(result, &p)
	}
	r.s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *PostsRepository) Update(ctx context.Context, post *models.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.posts[post.ID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.Title = post.Title
	cur.Content = post.Content
	cur.ModifiedAt = post.ModifiedAt
	r.s.posts[post.ID] = cur
	return nil
}

func (r *PostsRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.posts, id)
	return nil
}
