package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *PingRequest) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	u, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}
	return &RegisterResponse{ID: u.ID, Username: u.UserName}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	tok, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}

	md := metadata.Pairs(common.AuthorizationHeaderName, auth.HeaderValue(tok.Value))
	if err := grpc.SetHeader(ctx, md); err != nil {
		s.logger.Debug(ctx, "cannot set response header", "error", err.Error())
	}

	return &LoginResponse{AccessToken: tok.Value, ExpiresAt: tok.ExpiresAt}, nil
}

func (s *GRPCServer) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	user, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	p, err := s.posts.Create(ctx, user, req.Title, req.Content)
	if err != nil {
		return nil, s.fail(ctx, "create post", err)
	}
	return postFromModel(p), nil
}

func (s *GRPCServer) GetPost(ctx context.Context, req *GetPostRequest) (*Post, error) {
	p, err := s.posts.Get(ctx, req.ID)
	if err != nil {
		return nil, s.fail(ctx, "get post", err)
	}
	return postFromModel(p), nil
}

func (s *GRPCServer) ListPosts(ctx context.Context, req *ListPostsRequest) (*ListPostsResponse, error) {
	list, err := s.posts.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list posts", err)
	}
	out := &ListPostsResponse{Posts: make([]Post, 0, len(list))}
	for _, p := range list {
		out.Posts = append(out.Posts, *postFromModel(p))
	}
	return out, nil
}

func (s *GRPCServer) UpdatePost(ctx context.Context, req *UpdatePostRequest) (*Post, error) {
	user, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	p, err := s.posts.Update(ctx, user, req.ID, req.Title, req.Content)
	if err != nil {
		return nil, s.fail(ctx, "update post", err)
	}
	return postFromModel(p), nil
}

func (s *GRPCServer) DeletePost(ctx context.Context, req *DeletePostRequest) (*DeletePostResponse, error) {
	user, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	if err := s.posts.Delete(ctx, user, req.ID); err != nil {
		return nil, s.fail(ctx, "delete post", err)
	}
	return &DeletePostResponse{}, nil
}

// fail converts err to a status, logging the ones that end up as Internal.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err.Error())
	}
	return st
}
