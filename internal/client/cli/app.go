package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophposts/internal/client/config"
	gs "github.com/dmitrijs2005/gophposts/internal/server/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// API is the server surface the CLI talks to. *gs.Client implements it.
type API interface {
	Ping(ctx context.Context) (*gs.PingResponse, error)
	Register(ctx context.Context, in *gs.RegisterRequest) (*gs.RegisterResponse, error)
	Login(ctx context.Context, in *gs.LoginRequest) (*gs.LoginResponse, string, error)
	CreatePost(ctx context.Context, in *gs.CreatePostRequest) (*gs.Post, error)
	GetPost(ctx context.Context, id string) (*gs.Post, error)
	ListPosts(ctx context.Context) (*gs.ListPostsResponse, error)
	UpdatePost(ctx context.Context, in *gs.UpdatePostRequest) (*gs.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type App struct {
	config   *config.Config
	api      API
	closer   io.Closer
	token    string
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	conn, err := grpc.NewClient(c.ServerEndpointAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("cannot create connection: %w", err)
	}
	return newApp(c, gs.NewClient(conn), conn, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api API, closer io.Closer, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		api:    api,
		closer: closer,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if a.closer != nil {
		defer a.closer.Close()
	}
	fmt.Fprintln(a.out, "Welcome to GophPosts CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}

// callCtx bounds one server call by the configured timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// authCtx is callCtx plus the stored authorization header.
func (a *App) authCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := a.callCtx(ctx)
	return gs.WithToken(ctx, a.token), cancel
}
