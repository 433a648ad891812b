// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: interview.proto

package interview

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
	InterviewService_IngestSubmission_FullMethodName  = "/interview.InterviewService/IngestSubmission"
	InterviewService_ScoreSubmission_FullMethodName   = "/interview.InterviewService/ScoreSubmission"
	InterviewService_GetInterview_FullMethodName      = "/interview.InterviewService/GetInterview"
	InterviewService_ListInterviews_FullMethodName    = "/interview.InterviewService/ListInterviews"
	InterviewService_GetDashboardStats_FullMethodName = "/interview.InterviewService/GetDashboardStats"
	InterviewService_HealthCheck_FullMethodName       = "/interview.InterviewService/HealthCheck"
)

// InterviewServiceClient is the client API for InterviewService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type InterviewServiceClient interface {
	IngestSubmission(ctx context.Context, in *IngestSubmissionReq, opts ...grpc.CallOption) (*IngestSubmissionResp, error)
	ScoreSubmission(ctx context.Context, in *ScoreSubmissionReq, opts ...grpc.CallOption) (*ScoreSubmissionResp, error)
	GetInterview(ctx context.Context, in *GetInterviewReq, opts ...grpc.CallOption) (*GetInterviewResp, error)
	ListInterviews(ctx context.Context, in *ListInterviewsReq, opts ...grpc.CallOption) (*ListInterviewsResp, error)
	GetDashboardStats(ctx context.Context, in *GetDashboardStatsReq, opts ...grpc.CallOption) (*GetDashboardStatsResp, error)
	HealthCheck(ctx context.Context, in *HealthCheckReq, opts ...grpc.CallOption) (*HealthCheckResp, error)
}

type interviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInterviewServiceClient(cc grpc.ClientConnInterface) InterviewServiceClient {
	return &interviewServiceClient{cc}
}

func (c *interviewServiceClient) IngestSubmission(ctx context.Context, in *IngestSubmissionReq, opts ...grpc.CallOption) (*IngestSubmissionResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestSubmissionResp)
	err := c.cc.Invoke(ctx, InterviewService_IngestSubmission_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) ScoreSubmission(ctx context.Context, in *ScoreSubmissionReq, opts ...grpc.CallOption) (*ScoreSubmissionResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScoreSubmissionResp)
	err := c.cc.Invoke(ctx, InterviewService_ScoreSubmission_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) GetInterview(ctx context.Context, in *GetInterviewReq, opts ...grpc.CallOption) (*GetInterviewResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInterviewResp)
	err := c.cc.Invoke(ctx, InterviewService_GetInterview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) ListInterviews(ctx context.Context, in *ListInterviewsReq, opts ...grpc.CallOption) (*ListInterviewsResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInterviewsResp)
	err := c.cc.Invoke(ctx, InterviewService_ListInterviews_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) GetDashboardStats(ctx context.Context, in *GetDashboardStatsReq, opts ...grpc.CallOption) (*GetDashboardStatsResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDashboardStatsResp)
	err := c.cc.Invoke(ctx, InterviewService_GetDashboardStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) HealthCheck(ctx context.Context, in *HealthCheckReq, opts ...grpc.CallOption) (*HealthCheckResp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HealthCheckResp)
	err := c.cc.Invoke(ctx, InterviewService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InterviewServiceServer is the server API for InterviewService service.
// All implementations must embed UnimplementedInterviewServiceServer
// for forward compatibility.
type InterviewServiceServer interface {
	IngestSubmission(context.Context, *IngestSubmissionReq) (*IngestSubmissionResp, error)
	ScoreSubmission(context.Context, *ScoreSubmissionReq) (*ScoreSubmissionResp, error)
	GetInterview(context.Context, *GetInterviewReq) (*GetInterviewResp, error)
	ListInterviews(context.Context, *ListInterviewsReq) (*ListInterviewsResp, error)
	GetDashboardStats(context.Context, *GetDashboardStatsReq) (*GetDashboardStatsResp, error)
	HealthCheck(context.Context, *HealthCheckReq) (*HealthCheckResp, error)
	mustEmbedUnimplementedInterviewServiceServer()
}

// UnimplementedInterviewServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInterviewServiceServer struct{}

func (UnimplementedInterviewServiceServer) IngestSubmission(context.Context, *IngestSubmissionReq) (*IngestSubmissionResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestSubmission not implemented")
}
func (UnimplementedInterviewServiceServer) ScoreSubmission(context.Context, *ScoreSubmissionReq) (*ScoreSubmissionResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreSubmission not implemented")
}
func (UnimplementedInterviewServiceServer) GetInterview(context.Context, *GetInterviewReq) (*GetInterviewResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInterview not implemented")
}
func (UnimplementedInterviewServiceServer) ListInterviews(context.Context, *ListInterviewsReq) (*ListInterviewsResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInterviews not implemented")
}
func (UnimplementedInterviewServiceServer) GetDashboardStats(context.Context, *GetDashboardStatsReq) (*GetDashboardStatsResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDashboardStats not implemented")
}
func (UnimplementedInterviewServiceServer) HealthCheck(context.Context, *HealthCheckReq) (*HealthCheckResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HealthCheck not implemented")
}
func (UnimplementedInterviewServiceServer) mustEmbedUnimplementedInterviewServiceServer() {}
func (UnimplementedInterviewServiceServer) testEmbeddedByValue()                          {}

// UnsafeInterviewServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InterviewServiceServer will
// result in compilation errors.
type UnsafeInterviewServiceServer interface {
	mustEmbedUnimplementedInterviewServiceServer()
}

func RegisterInterviewServiceServer(s grpc.ServiceRegistrar, srv InterviewServiceServer) {
	// If the following call pancis, it indicates UnimplementedInterviewServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InterviewService_ServiceDesc, srv)
}

func _InterviewService_IngestSubmission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestSubmissionReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).IngestSubmission(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_IngestSubmission_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).IngestSubmission(ctx, req.(*IngestSubmissionReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_ScoreSubmission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreSubmissionReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).ScoreSubmission(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_ScoreSubmission_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).ScoreSubmission(ctx, req.(*ScoreSubmissionReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_GetInterview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInterviewReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).GetInterview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_GetInterview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).GetInterview(ctx, req.(*GetInterviewReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_ListInterviews_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInterviewsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).ListInterviews(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_ListInterviews_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).ListInterviews(ctx, req.(*ListInterviewsReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_GetDashboardStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDashboardStatsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).GetDashboardStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_GetDashboardStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).GetDashboardStats(ctx, req.(*GetDashboardStatsReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_HealthCheck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthCheckReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).HealthCheck(ctx, req.(*HealthCheckReq))
	}
	return interceptor(ctx, in, info, handler)
}

// InterviewService_ServiceDesc is the grpc.ServiceDesc for InterviewService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InterviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "interview.InterviewService",
	HandlerType: (*InterviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestSubmission",
			Handler:    _InterviewService_IngestSubmission_Handler,
		},
		{
			MethodName: "ScoreSubmission",
			Handler:    _InterviewService_ScoreSubmission_Handler,
		},
		{
			MethodName: "GetInterview",
			Handler:    _InterviewService_GetInterview_Handler,
		},
		{
			MethodName: "ListInterviews",
			Handler:    _InterviewService_ListInterviews_Handler,
		},
		{
			MethodName: "GetDashboardStats",
			Handler:    _InterviewService_GetDashboardStats_Handler,
		},
		{
			MethodName: "HealthCheck",
			Handler:    _InterviewService_HealthCheck_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "interview.proto",
}
