package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "gophposts.PostService"

// PostServiceServer is the server API of the gophposts.PostService service.
type PostServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	CreatePost(context.Context, *CreatePostRequest) (*Post, error)
	GetPost(context.Context, *GetPostRequest) (*Post, error)
	ListPosts(context.Context, *ListPostsRequest) (*ListPostsResponse, error)
	UpdatePost(context.Context, *UpdatePostRequest) (*Post, error)
	DeletePost(context.Context, *DeletePostRequest) (*DeletePostResponse, error)
}

func fullMethod(name string) string {
	return "/" + serviceName + "/" + name
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PostServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("Ping", PostServiceServer.Ping),
		unaryMethod("Register", PostServiceServer.Register),
		unaryMethod("Login", PostServiceServer.Login),
		unaryMethod("CreatePost", PostServiceServer.CreatePost),
		unaryMethod("GetPost", PostServiceServer.GetPost),
		unaryMethod("ListPosts", PostServiceServer.ListPosts),
		unaryMethod("UpdatePost", PostServiceServer.UpdatePost),
		unaryMethod("DeletePost", PostServiceServer.DeletePost),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophposts/post_service",
}

// RegisterPostServiceServer attaches srv to a grpc.Server (or any registrar).
func RegisterPostServiceServer(r grpc.ServiceRegistrar, srv PostServiceServer) {
	r.RegisterService(&serviceDesc, srv)
}

// unaryMethod builds the MethodDesc glue that protoc-gen-go-grpc would
// otherwise generate for one unary method.
func unaryMethod[Req, Resp any](name string, call func(PostServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(PostServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
