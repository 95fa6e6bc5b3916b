package sorter_service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName  = "seqtools.Sorter"
	sortMethod   = "/" + serviceName + "/Sort"
	mergeMethod  = "/" + serviceName + "/Merge"
	descMetadata = "seqtools/sorter.proto"
)

// SorterServer is the server side of the seqtools.Sorter service. Sequences travel as
// google.protobuf.ListValue of numbers, a merge request is a ListValue of two such lists.
type SorterServer interface {
	Sort(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
	Merge(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
}

func sortHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SorterServer).Sort(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: sortMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SorterServer).Sort(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

func mergeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SorterServer).Merge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: mergeMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SorterServer).Merge(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

var sorterServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SorterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Sort",
			Handler:    sortHandler,
		},
		{
			MethodName: "Merge",
			Handler:    mergeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: descMetadata,
}

// RegisterSorterServer registers srv on s under the seqtools.Sorter service name.
func RegisterSorterServer(s grpc.ServiceRegistrar, srv SorterServer) {
	s.RegisterService(&sorterServiceDesc, srv)
}
