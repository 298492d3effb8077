package shopservice

import (
	"context"

	"google.golang.org/grpc"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/codec"
)

// ServiceName is the fully qualified GRPC service name.
const ServiceName = "sharegourmet.ShopService"

// ShopServiceServer is the server API for ShopService.
type ShopServiceServer interface {
	Search(context.Context, *SearchRequest) (*SearchResponse, error)
	Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error)
	Share(context.Context, *ShareRequest) (*ShareResponse, error)
	Save(context.Context, *SaveRequest) (*SaveResponse, error)
	PingDB(context.Context, *PingDBRequest) (*PingDBResponse, error)
	GetUptime(context.Context, *GetUptimeRequest) (*GetUptimeResponse, error)
}

// ShopServiceClient is the client API for ShopService.
type ShopServiceClient interface {
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error)
	Share(ctx context.Context, in *ShareRequest, opts ...grpc.CallOption) (*ShareResponse, error)
	Save(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error)
	PingDB(ctx context.Context, in *PingDBRequest, opts ...grpc.CallOption) (*PingDBResponse, error)
	GetUptime(ctx context.Context, in *GetUptimeRequest, opts ...grpc.CallOption) (*GetUptimeResponse, error)
}

// ServiceDesc describes ShopService for grpc.Server registration.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShopServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Search", Handler: unary("Search", func(srv ShopServiceServer, ctx context.Context, req *SearchRequest) (interface{}, error) {
			return srv.Search(ctx, req)
		})},
		{MethodName: "Resolve", Handler: unary("Resolve", func(srv ShopServiceServer, ctx context.Context, req *ResolveRequest) (interface{}, error) {
			return srv.Resolve(ctx, req)
		})},
		{MethodName: "Share", Handler: unary("Share", func(srv ShopServiceServer, ctx context.Context, req *ShareRequest) (interface{}, error) {
			return srv.Share(ctx, req)
		})},
		{MethodName: "Save", Handler: unary("Save", func(srv ShopServiceServer, ctx context.Context, req *SaveRequest) (interface{}, error) {
			return srv.Save(ctx, req)
		})},
		{MethodName: "PingDB", Handler: unary("PingDB", func(srv ShopServiceServer, ctx context.Context, req *PingDBRequest) (interface{}, error) {
			return srv.PingDB(ctx, req)
		})},
		{MethodName: "GetUptime", Handler: unary("GetUptime", func(srv ShopServiceServer, ctx context.Context, req *GetUptimeRequest) (interface{}, error) {
			return srv.GetUptime(ctx, req)
		})},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shopservice",
}

// RegisterShopServiceServer registers srv on s.
func RegisterShopServiceServer(s grpc.ServiceRegistrar, srv ShopServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unary adapts a typed method to grpc.MethodDesc.Handler, running the server interceptor if any.
func unary[Req any](method string, call func(ShopServiceServer, context.Context, *Req) (interface{}, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ShopServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ShopServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type shopServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewShopServiceClient returns a client sending JSON-encoded messages over cc.
func NewShopServiceClient(cc grpc.ClientConnInterface) ShopServiceClient {
	return &shopServiceClient{cc: cc}
}

func (c *shopServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *shopServiceClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	out := new(SearchResponse)
	if err := c.invoke(ctx, "Search", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shopServiceClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error) {
	out := new(ResolveResponse)
	if err := c.invoke(ctx, "Resolve", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shopServiceClient) Share(ctx context.Context, in *ShareRequest, opts ...grpc.CallOption) (*ShareResponse, error) {
	out := new(ShareResponse)
	if err := c.invoke(ctx, "Share", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shopServiceClient) Save(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error) {
	out := new(SaveResponse)
	if err := c.invoke(ctx, "Save", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shopServiceClient) PingDB(ctx context.Context, in *PingDBRequest, opts ...grpc.CallOption) (*PingDBResponse, error) {
	out := new(PingDBResponse)
	if err := c.invoke(ctx, "PingDB", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shopServiceClient) GetUptime(ctx context.Context, in *GetUptimeRequest, opts ...grpc.CallOption) (*GetUptimeResponse, error) {
	out := new(GetUptimeResponse)
	if err := c.invoke(ctx, "GetUptime", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
