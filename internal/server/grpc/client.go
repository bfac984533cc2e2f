package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Client is a thin typed wrapper over a connection to gophposts.PostService.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// WithToken returns ctx carrying the authorization header for headerValue,
// as returned by Login.
func WithToken(ctx context.Context, headerValue string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, headerValue)
}

func (c *Client) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append(opts, grpc.CallContentSubtype(codecName))
	return c.cc.Invoke(ctx, fullMethod(method), in, out, opts...)
}

func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.invoke(ctx, "Ping", &PingRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.invoke(ctx, "Register", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Login returns the response and the authorization header value the server
// sent back, ready to be passed to WithToken.
func (c *Client) Login(ctx context.Context, in *LoginRequest) (*LoginResponse, string, error) {
	out := new(LoginResponse)
	var header metadata.MD
	if err := c.invoke(ctx, "Login", in, out, grpc.Header(&header)); err != nil {
		return nil, "", err
	}
	var bearer string
	if v := header.Get(common.AuthorizationHeaderName); len(v) > 0 {
		bearer = v[0]
	}
	return out, bearer, nil
}

func (c *Client) CreatePost(ctx context.Context, in *CreatePostRequest) (*Post, error) {
	out := new(Post)
	if err := c.invoke(ctx, "CreatePost", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	out := new(Post)
	if err := c.invoke(ctx, "GetPost", &GetPostRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPosts(ctx context.Context) (*ListPostsResponse, error) {
	out := new(ListPostsResponse)
	if err := c.invoke(ctx, "ListPosts", &ListPostsRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdatePost(ctx context.Context, in *UpdatePostRequest) (*Post, error) {
	out := new(Post)
	if err := c.invoke(ctx, "UpdatePost", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.invoke(ctx, "DeletePost", &DeletePostRequest{ID: id}, &DeletePostResponse{})
}
