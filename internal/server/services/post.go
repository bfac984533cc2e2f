package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/dbx"
	"github.com/dmitrijs2005/gophposts/internal/logging"
	"github.com/dmitrijs2005/gophposts/internal/server/auth"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// PostService implements post CRUD. Reads are open to everyone; update and
// delete pass through the ownership guard.
type PostService struct {
	db          dbx.DBTX
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	logger      logging.Logger
}

func NewPostService(db dbx.DBTX, tx dbx.Transactor, m repomanager.RepositoryManager, now func() time.Time, l logging.Logger) *PostService {
	return &PostService{
		db:          db,
		tx:          tx,
		repomanager: m,
		now:         now,
		logger:      l.With("module", "posts"),
	}
}

// Create stores a new post owned by actor.
func (s *PostService) Create(ctx context.Context, actor *models.User, title, content string) (*models.Post, error) {
	if actor == nil || actor.UserName == "" {
		return nil, common.ErrorUnauthorized
	}
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post := &models.Post{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		Owner:      actor.UserName,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.repomanager.Posts(s.db).Create(ctx, post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	s.logger.Info(ctx, "post created", "id", post.ID, "owner", post.Owner)
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	post, err := s.repomanager.Posts(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("error getting post", err)
	}
	return post, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.repomanager.Posts(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

// Update changes title and content of a post owned by actor. Lookup, ownership
// check and write happen in one transaction.
func (s *PostService) Update(ctx context.Context, actor *models.User, id, title, content string) (*models.Post, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	var updated *models.Post
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Posts(tx)

		post, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := auth.AuthorizeMutation(post, actor); err != nil {
			return err
		}

		post.Title = title
		post.Content = content
		post.ModifiedAt = s.now().UTC()
		if err := repo.Update(ctx, post); err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		s.logDenied(ctx, "update", id, actor, err)
		return nil, wrapRepoErr("error updating post", err)
	}

	s.logger.Info(ctx, "post updated", "id", id)
	return updated, nil
}

// Delete removes a post owned by actor.
func (s *PostService) Delete(ctx context.Context, actor *models.User, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Posts(tx)

		post, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := auth.AuthorizeMutation(post, actor); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		s.logDenied(ctx, "delete", id, actor, err)
		return wrapRepoErr("error deleting post", err)
	}

	s.logger.Info(ctx, "post deleted", "id", id)
	return nil
}

func (s *PostService) logDenied(ctx context.Context, op, id string, actor *models.User, err error) {
	if !errors.Is(err, common.ErrorForbidden) {
		return
	}
	name := ""
	if actor != nil {
		name = actor.UserName
	}
	s.logger.Warn(ctx, "mutation denied", "op", op, "id", id, "actor", name)
}

// wrapRepoErr passes sentinels through untouched and adds context to the rest.
func wrapRepoErr(msg string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorForbidden):
		return err
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func validatePost(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", common.ErrorValidation)
	}
	return nil
}

// Post ids are UUIDs; anything else cannot exist.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
