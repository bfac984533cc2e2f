package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const principalKey ctxKey = "principal"

// authenticatedMethods lists the calls that require a bearer token.
var authenticatedMethods = map[string]bool{
	fullMethod("CreatePost"): true,
	fullMethod("UpdatePost"): true,
	fullMethod("DeletePost"): true,
}

func withPrincipal(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, principalKey, u)
}

// PrincipalFromContext returns the user the access token interceptor resolved
// for the current call.
func PrincipalFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(principalKey).(*models.User)
	return u, ok && u != nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !authenticatedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
			header = values[0]
		}
	}

	user, err := s.auth.Authenticate(ctx, header)
	if err != nil {
		return nil, toStatus(err)
	}

	return handler(withPrincipal(ctx, user), req)
}

// recoveryInterceptor turns a handler panic into codes.Internal so that one
// bad request cannot take the process down.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "handler panic", "method", info.FullMethod, "panic", p)
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "call",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
