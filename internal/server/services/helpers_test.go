package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/dbx"
	"github.com/dmitrijs2005/gophposts/internal/server/auth"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(1_700_000_000, 0).UTC()

type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testKey(t *testing.T) auth.SigningKey {
	t.Helper()
	k, err := auth.SigningKeyFromBytes(bytes.Repeat([]byte{7}, auth.MinKeySize))
	require.NoError(t, err)
	return k
}

var errDB = errors.New("db down")

// brokenManager returns repositories whose every call fails with errDB.
type brokenManager struct{}

func (brokenManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (brokenManager) Users(dbx.DBTX) users.Repository             { return brokenUsers{} }
func (brokenManager) Posts(dbx.DBTX) posts.Repository             { return brokenPosts{} }

type brokenUsers struct{}

func (brokenUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, errDB }
func (brokenUsers) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, errDB
}

type brokenPosts struct{}

func (brokenPosts) Create(context.Context, *models.Post) error { return errDB }
func (brokenPosts) FindByID(context.Context, string) (*models.Post, error) {
	return nil, errDB
}
func (brokenPosts) FindByIDForUpdate(context.Context, string) (*models.Post, error) {
	return nil, errDB
}
func (brokenPosts) List(context.Context) ([]*models.Post, error) { return nil, errDB }
func (brokenPosts) Update(context.Context, *models.Post) error  { return errDB }
func (brokenPosts) Delete(context.Context, string) error        { return errDB }
