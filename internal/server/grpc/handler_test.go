package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/logging"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/dmitrijs2005/gophposts/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var samplePost = &models.Post{
	ID: "p1", Title: "t", Content: "c", Owner: "alice",
	CreatedAt: time.Unix(1_700_000_000, 0).UTC(), ModifiedAt: time.Unix(1_700_000_000, 0).UTC(),
}

func TestPing(t *testing.T) {
	s := newTestServer(&fakeAuth{})
	resp, err := s.Ping(context.Background(), &PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestRegister(t *testing.T) {
	fu := &fakeUsers{regResp: &models.User{ID: "1", UserName: "alice"}}
	s := NewGRPCServer("", logging.Nop(), fu, &fakePosts{}, &fakeAuth{})

	resp, err := s.Register(context.Background(), &RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, &RegisterResponse{ID: "1", Username: "alice"}, resp)

	fu.regErr = common.ErrorAlreadyExists
	_, err = s.Register(context.Background(), &RegisterRequest{Username: "alice", Password: "pw"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestLogin(t *testing.T) {
	exp := time.Unix(1_700_003_600, 0).UTC()
	fu := &fakeUsers{loginResp: &services.Token{Value: "tok", ExpiresAt: exp}}
	s := NewGRPCServer("", logging.Nop(), fu, &fakePosts{}, &fakeAuth{})

	// no transport stream here, so the header cannot be set; the body still comes back
	resp, err := s.Login(context.Background(), &LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, exp, resp.ExpiresAt)

	fu.loginErr = common.ErrorUnauthorized
	_, err = s.Login(context.Background(), &LoginRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	fu.loginErr = common.ErrorInternal
	_, err = s.Login(context.Background(), &LoginRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestMutations_RequirePrincipal(t *testing.T) {
	s := newTestServer(&fakeAuth{})
	ctx := context.Background()

	_, err := s.CreatePost(ctx, &CreatePostRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.UpdatePost(ctx, &UpdatePostRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.DeletePost(ctx, &DeletePostRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestPostHandlers(t *testing.T) {
	alice := &models.User{ID: "1", UserName: "alice"}
	fp := &fakePosts{post: samplePost, list: []*models.Post{samplePost}}
	s := NewGRPCServer("", logging.Nop(), &fakeUsers{}, fp, &fakeAuth{})
	ctx := withPrincipal(context.Background(), alice)

	created, err := s.CreatePost(ctx, &CreatePostRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, postFromModel(samplePost), created)
	assert.Same(t, alice, fp.actor)

	got, err := s.GetPost(context.Background(), &GetPostRequest{ID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)

	list, err := s.ListPosts(context.Background(), &ListPostsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Posts, 1)
	assert.Equal(t, "p1", list.Posts[0].ID)

	fp.actor = nil
	_, err = s.UpdatePost(ctx, &UpdatePostRequest{ID: "p1", Title: "x", Content: "y"})
	require.NoError(t, err)
	assert.Same(t, alice, fp.actor)

	_, err = s.DeletePost(ctx, &DeletePostRequest{ID: "p1"})
	require.NoError(t, err)
}

func TestPostHandlers_ErrorCodes(t *testing.T) {
	alice := &models.User{ID: "1", UserName: "alice"}
	ctx := withPrincipal(context.Background(), alice)

	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"forbidden", common.ErrorForbidden, codes.PermissionDenied},
		{"not found", common.ErrorNotFound, codes.NotFound},
		{"validation", common.ErrorValidation, codes.InvalidArgument},
		{"internal", errors.New("db down"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGRPCServer("", logging.Nop(), &fakeUsers{}, &fakePosts{err: tt.err}, &fakeAuth{})

			_, err := s.UpdatePost(ctx, &UpdatePostRequest{ID: "p1"})
			assert.Equal(t, tt.code, status.Code(err))
			_, err = s.DeletePost(ctx, &DeletePostRequest{ID: "p1"})
			assert.Equal(t, tt.code, status.Code(err))
			_, err = s.GetPost(ctx, &GetPostRequest{ID: "p1"})
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestListPosts_EmptyIsNotNil(t *testing.T) {
	s := NewGRPCServer("", logging.Nop(), &fakeUsers{}, &fakePosts{}, &fakeAuth{})
	resp, err := s.ListPosts(context.Background(), &ListPostsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Posts)
	assert.Empty(t, resp.Posts)
}
