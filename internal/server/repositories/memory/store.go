// Package memory holds map-backed repositories used when no database DSN is
// configured, and by tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/dbx"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

// Store is the shared state behind the in-memory repositories.
type Store struct {
	mu    sync.RWMutex
	users map[string]models.User
	posts map[string]models.Post

	// txMu serializes units of work started through WithinTx.
	txMu sync.Mutex
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]models.User),
		posts: make(map[string]models.Post),
		now:   time.Now,
	}
}

// WithinTx runs fn while holding the store's unit-of-work lock. The handle
// passed to fn is nil; memory repositories ignore it.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) Users() *UsersRepository {
	return &UsersRepository{s: s}
}

func (s *Store) Posts() *PostsRepository {
	return &PostsRepository{s: s}
}
