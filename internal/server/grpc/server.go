// Package grpc exposes the post service over gRPC. Messages are plain Go
// structs encoded with a JSON codec; the service descriptor is written by hand.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophposts/internal/logging"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/dmitrijs2005/gophposts/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.Token, error)
}

type PostService interface {
	Create(ctx context.Context, actor *models.User, title, content string) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, actor *models.User, id, title, content string) (*models.Post, error)
	Delete(ctx context.Context, actor *models.User, id string) error
}

type Authenticator interface {
	Authenticate(ctx context.Context, headerValue string) (*models.User, error)
}

type GRPCServer struct {
	address string
	users   UserService
	posts   PostService
	auth    Authenticator
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ps PostService, au Authenticator) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		posts:   ps,
		auth:    au,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.recoveryInterceptor,
		s.loggingInterceptor,
		s.accessTokenInterceptor,
	))
	RegisterPostServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
