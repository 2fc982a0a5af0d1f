package txnpb

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// TxnStatusAuthorityClient is the client API for the TxnStatusAuthority
// service, served by the status-authority tablet.
type TxnStatusAuthorityClient interface {
	GetTxnStatus(ctx context.Context, in *GetTxnStatusRequest, opts ...grpc.CallOption) (*GetTxnStatusResponse, error)
	AbortTxn(ctx context.Context, in *AbortTxnRequest, opts ...grpc.CallOption) (*AbortTxnResponse, error)
	UpdateTxnState(ctx context.Context, in *UpdateTxnStateRequest, opts ...grpc.CallOption) (*UpdateTxnStateResponse, error)
}

type txnStatusAuthorityClient struct {
	cc *grpc.ClientConn
}

func NewTxnStatusAuthorityClient(cc *grpc.ClientConn) TxnStatusAuthorityClient {
	return &txnStatusAuthorityClient{cc}
}

func (c *txnStatusAuthorityClient) GetTxnStatus(ctx context.Context, in *GetTxnStatusRequest, opts ...grpc.CallOption) (*GetTxnStatusResponse, error) {
	out := new(GetTxnStatusResponse)
	err := c.cc.Invoke(ctx, "/txnpb.TxnStatusAuthority/GetTxnStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *txnStatusAuthorityClient) AbortTxn(ctx context.Context, in *AbortTxnRequest, opts ...grpc.CallOption) (*AbortTxnResponse, error) {
	out := new(AbortTxnResponse)
	err := c.cc.Invoke(ctx, "/txnpb.TxnStatusAuthority/AbortTxn", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *txnStatusAuthorityClient) UpdateTxnState(ctx context.Context, in *UpdateTxnStateRequest, opts ...grpc.CallOption) (*UpdateTxnStateResponse, error) {
	out := new(UpdateTxnStateResponse)
	err := c.cc.Invoke(ctx, "/txnpb.TxnStatusAuthority/UpdateTxnState", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TxnStatusAuthorityServer is the server API for the TxnStatusAuthority
// service.
type TxnStatusAuthorityServer interface {
	GetTxnStatus(context.Context, *GetTxnStatusRequest) (*GetTxnStatusResponse, error)
	AbortTxn(context.Context, *AbortTxnRequest) (*AbortTxnResponse, error)
	UpdateTxnState(context.Context, *UpdateTxnStateRequest) (*UpdateTxnStateResponse, error)
}

func RegisterTxnStatusAuthorityServer(s *grpc.Server, srv TxnStatusAuthorityServer) {
	s.RegisterService(&_TxnStatusAuthority_serviceDesc, srv)
}

func _TxnStatusAuthority_GetTxnStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTxnStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TxnStatusAuthorityServer).GetTxnStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/txnpb.TxnStatusAuthority/GetTxnStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TxnStatusAuthorityServer).GetTxnStatus(ctx, req.(*GetTxnStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TxnStatusAuthority_AbortTxn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AbortTxnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TxnStatusAuthorityServer).AbortTxn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/txnpb.TxnStatusAuthority/AbortTxn",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TxnStatusAuthorityServer).AbortTxn(ctx, req.(*AbortTxnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TxnStatusAuthority_UpdateTxnState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTxnStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TxnStatusAuthorityServer).UpdateTxnState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/txnpb.TxnStatusAuthority/UpdateTxnState",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TxnStatusAuthorityServer).UpdateTxnState(ctx, req.(*UpdateTxnStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _TxnStatusAuthority_serviceDesc = grpc.ServiceDesc{
	ServiceName: "txnpb.TxnStatusAuthority",
	HandlerType: (*TxnStatusAuthorityServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetTxnStatus",
			Handler:    _TxnStatusAuthority_GetTxnStatus_Handler,
		},
		{
			MethodName: "AbortTxn",
			Handler:    _TxnStatusAuthority_AbortTxn_Handler,
		},
		{
			MethodName: "UpdateTxnState",
			Handler:    _TxnStatusAuthority_UpdateTxnState_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "txnpb.proto",
}

// TabletTxnClient is the client API for the TabletTxn service, served by
// every tablet over its local transaction participant.
type TabletTxnClient interface {
	GetLocalTxnStatus(ctx context.Context, in *LocalTxnStatusRequest, opts ...grpc.CallOption) (*LocalTxnStatusResponse, error)
	AbortTxn(ctx context.Context, in *AbortTxnRequest, opts ...grpc.CallOption) (*AbortTxnResponse, error)
}

type tabletTxnClient struct {
	cc *grpc.ClientConn
}

func NewTabletTxnClient(cc *grpc.ClientConn) TabletTxnClient {
	return &tabletTxnClient{cc}
}

func (c *tabletTxnClient) GetLocalTxnStatus(ctx context.Context, in *LocalTxnStatusRequest, opts ...grpc.CallOption) (*LocalTxnStatusResponse, error) {
	out := new(LocalTxnStatusResponse)
	err := c.cc.Invoke(ctx, "/txnpb.TabletTxn/GetLocalTxnStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tabletTxnClient) AbortTxn(ctx context.Context, in *AbortTxnRequest, opts ...grpc.CallOption) (*AbortTxnResponse, error) {
	out := new(AbortTxnResponse)
	err := c.cc.Invoke(ctx, "/txnpb.TabletTxn/AbortTxn", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TabletTxnServer is the server API for the TabletTxn service.
type TabletTxnServer interface {
	GetLocalTxnStatus(context.Context, *LocalTxnStatusRequest) (*LocalTxnStatusResponse, error)
	AbortTxn(context.Context, *AbortTxnRequest) (*AbortTxnResponse, error)
}

func RegisterTabletTxnServer(s *grpc.Server, srv TabletTxnServer) {
	s.RegisterService(&_TabletTxn_serviceDesc, srv)
}

func _TabletTxn_GetLocalTxnStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LocalTxnStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TabletTxnServer).GetLocalTxnStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/txnpb.TabletTxn/GetLocalTxnStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TabletTxnServer).GetLocalTxnStatus(ctx, req.(*LocalTxnStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TabletTxn_AbortTxn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AbortTxnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TabletTxnServer).AbortTxn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/txnpb.TabletTxn/AbortTxn",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TabletTxnServer).AbortTxn(ctx, req.(*AbortTxnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _TabletTxn_serviceDesc = grpc.ServiceDesc{
	ServiceName: "txnpb.TabletTxn",
	HandlerType: (*TabletTxnServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetLocalTxnStatus",
			Handler:    _TabletTxn_GetLocalTxnStatus_Handler,
		},
		{
			MethodName: "AbortTxn",
			Handler:    _TabletTxn_AbortTxn_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "txnpb.proto",
}
