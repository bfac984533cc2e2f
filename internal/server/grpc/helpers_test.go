package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/dmitrijs2005/gophposts/internal/server/services"
)

// ---- fakes ----

type fakeUsers struct {
	regResp *models.User
	regErr  error

	loginResp *services.Token
	loginErr  error
}

func (f *fakeUsers) Register(ctx context.Context, username, password string) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(ctx context.Context, username, password string) (*services.Token, error) {
	return f.loginResp, f.loginErr
}

type fakePosts struct {
	post  *models.Post
	list  []*models.Post
	err   error
	actor *models.User
}

func (f *fakePosts) Create(ctx context.Context, actor *models.User, title, content string) (*models.Post, error) {
	f.actor = actor
	return f.post, f.err
}
func (f *fakePosts) Get(ctx context.Context, id string) (*models.Post, error) {
	return f.post, f.err
}
func (f *fakePosts) List(ctx context.Context) ([]*models.Post, error) {
	return f.list, f.err
}
func (f *fakePosts) Update(ctx context.Context, actor *models.User, id, title, content string) (*models.Post, error) {
	f.actor = actor
	return f.post, f.err
}
func (f *fakePosts) Delete(ctx context.Context, actor *models.User, id string) error {
	f.actor = actor
	return f.err
}

type fakeAuth struct {
	user   *models.User
	err    error
	header string
	calls  int
}

func (f *fakeAuth) Authenticate(ctx context.Context, headerValue string) (*models.User, error) {
	f.calls++
	f.header = headerValue
	return f.user, f.err
}
