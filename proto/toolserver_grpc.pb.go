// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: toolserver.proto

package toolv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ToolServer_CallTool_FullMethodName = "/baton.toolserver.v1.ToolServer/CallTool"
)

// ToolServerClient is the client API for ToolServer service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ToolServer is the gateway contract for external tool execution. Deployments
// that do not speak MCP expose this single RPC instead.
type ToolServerClient interface {
	CallTool(ctx context.Context, in *CallToolRequest, opts ...grpc.CallOption) (*CallToolResponse, error)
}

type toolServerClient struct {
	cc grpc.ClientConnInterface
}

func NewToolServerClient(cc grpc.ClientConnInterface) ToolServerClient {
	return &toolServerClient{cc}
}

func (c *toolServerClient) CallTool(ctx context.Context, in *CallToolRequest, opts ...grpc.CallOption) (*CallToolResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CallToolResponse)
	err := c.cc.Invoke(ctx, ToolServer_CallTool_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToolServerServer is the server API for ToolServer service.
// All implementations must embed UnimplementedToolServerServer
// for forward compatibility.
//
// ToolServer is the gateway contract for external tool execution. Deployments
// that do not speak MCP expose this single RPC instead.
type ToolServerServer interface {
	CallTool(context.Context, *CallToolRequest) (*CallToolResponse, error)
	mustEmbedUnimplementedToolServerServer()
}

// UnimplementedToolServerServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedToolServerServer struct{}

func (UnimplementedToolServerServer) CallTool(context.Context, *CallToolRequest) (*CallToolResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CallTool not implemented")
}
func (UnimplementedToolServerServer) mustEmbedUnimplementedToolServerServer() {}
func (UnimplementedToolServerServer) testEmbeddedByValue()                    {}

// UnsafeToolServerServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ToolServerServer will
// result in compilation errors.
type UnsafeToolServerServer interface {
	mustEmbedUnimplementedToolServerServer()
}

func RegisterToolServerServer(s grpc.ServiceRegistrar, srv ToolServerServer) {
	// If the following call panics, it indicates UnimplementedToolServerServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ToolServer_ServiceDesc, srv)
}

func _ToolServer_CallTool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CallToolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServerServer).CallTool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolServer_CallTool_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ToolServerServer).CallTool(ctx, req.(*CallToolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ToolServer_ServiceDesc is the grpc.ServiceDesc for ToolServer service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ToolServer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "baton.toolserver.v1.ToolServer",
	HandlerType: (*ToolServerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CallTool",
			Handler:    _ToolServer_CallTool_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "toolserver.proto",
}
