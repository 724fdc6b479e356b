package grpc

// proto.go defines the gRPC server interface derived from
// tierbank/depositcalc/v1/calculator.proto. This file serves as a stand-in
// for buf-generated code. Once `buf generate` is run, replace this file
// with the import from github.com/tierbank/api/gen/go/tierbank/depositcalc/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CalculatorServiceServer is the server API for CalculatorService.
type CalculatorServiceServer interface {
	Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error)
	ValidateTiers(context.Context, *ValidateTiersRequest) (*ValidateTiersResponse, error)
	GetCalculation(context.Context, *GetCalculationRequest) (*GetCalculationResponse, error)
	ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error)
	ReplayCalculation(context.Context, *ReplayCalculationRequest) (*ReplayCalculationResponse, error)
	SavePreset(context.Context, *SavePresetRequest) (*SavePresetResponse, error)
	ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error)
	mustEmbedUnimplementedCalculatorServiceServer()
}

// UnimplementedCalculatorServiceServer provides forward-compatible default implementations.
type UnimplementedCalculatorServiceServer struct{}

func (UnimplementedCalculatorServiceServer) Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Calculate not implemented")
}
func (UnimplementedCalculatorServiceServer) ValidateTiers(context.Context, *ValidateTiersRequest) (*ValidateTiersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateTiers not implemented")
}
func (UnimplementedCalculatorServiceServer) GetCalculation(context.Context, *GetCalculationRequest) (*GetCalculationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCalculation not implemented")
}
func (UnimplementedCalculatorServiceServer) ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListHistory not implemented")
}
func (UnimplementedCalculatorServiceServer) ReplayCalculation(context.Context, *ReplayCalculationRequest) (*ReplayCalculationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReplayCalculation not implemented")
}
func (UnimplementedCalculatorServiceServer) SavePreset(context.Context, *SavePresetRequest) (*SavePresetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SavePreset not implemented")
}
func (UnimplementedCalculatorServiceServer) ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPresets not implemented")
}
func (UnimplementedCalculatorServiceServer) mustEmbedUnimplementedCalculatorServiceServer() {}

// RegisterCalculatorServiceServer registers the CalculatorServiceServer with the gRPC server.
func RegisterCalculatorServiceServer(s *grpclib.Server, srv CalculatorServiceServer) {
	s.RegisterService(&_CalculatorService_serviceDesc, srv)
}

var _CalculatorService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive // gRPC handler registration
	ServiceName: "tierbank.depositcalc.v1.CalculatorService",
	HandlerType: (*CalculatorServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Calculate", Handler: _CalculatorService_Calculate_Handler},
		{MethodName: "ValidateTiers", Handler: _CalculatorService_ValidateTiers_Handler},
		{MethodName: "GetCalculation", Handler: _CalculatorService_GetCalculation_Handler},
		{MethodName: "ListHistory", Handler: _CalculatorService_ListHistory_Handler},
		{MethodName: "ReplayCalculation", Handler: _CalculatorService_ReplayCalculation_Handler},
		{MethodName: "SavePreset", Handler: _CalculatorService_SavePreset_Handler},
		{MethodName: "ListPresets", Handler: _CalculatorService_ListPresets_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _CalculatorService_Calculate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).Calculate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tierbank.depositcalc.v1.CalculatorService/Calculate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalculatorService_ValidateTiers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ValidateTiersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).ValidateTiers(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tierbank.depositcalc.v1.CalculatorService/ValidateTiers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).ValidateTiers(ctx, req.(*ValidateTiersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalculatorService_GetCalculation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(GetCalculationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).GetCalculation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tierbank.depositcalc.v1.CalculatorService/GetCalculation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).GetCalculation(ctx, req.(*GetCalculationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalculatorService_ListHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ListHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).ListHistory(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tierbank.depositcalc.v1.CalculatorService/ListHistory",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).ListHistory(ctx, req.(*ListHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalculatorService_ReplayCalculation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ReplayCalculationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).ReplayCalculation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tierbank.depositcalc.v1.CalculatorService/ReplayCalculation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).ReplayCalculation(ctx, req.(*ReplayCalculationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalculatorService_SavePreset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(SavePresetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).SavePreset(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tierbank.depositcalc.v1.CalculatorService/SavePreset",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).SavePreset(ctx, req.(*SavePresetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalculatorService_ListPresets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ListPresetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).ListPresets(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tierbank.depositcalc.v1.CalculatorService/ListPresets",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).ListPresets(ctx, req.(*ListPresetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}
