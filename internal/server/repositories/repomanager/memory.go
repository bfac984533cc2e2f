package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophposts/internal/dbx"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves every call from one memory.Store. The db
// handles passed in are ignored.
type InMemoryRepositoryManager struct {
	store *memory.Store
}

func NewInMemoryRepositoryManager(store *memory.Store) RepositoryManager {
	return &InMemoryRepositoryManager{store: store}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(_ dbx.DBTX) users.Repository {
	return m.store.Users()
}

func (m *InMemoryRepositoryManager) Posts(_ dbx.DBTX) posts.Repository {
	return m.store.Posts()
}
