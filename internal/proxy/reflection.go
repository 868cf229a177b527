package proxy

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	reflectpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// DescriptorSource resolves the descriptor of a downstream method. The
// default implementation asks the target's server reflection service;
// alternative sources (e.g. a statically supplied descriptor set) can
// be substituted.
type DescriptorSource interface {
	Resolve(ctx context.Context, conn grpc.ClientConnInterface, fqService, method string) (protoreflect.MethodDescriptor, error)
}

// ReflectionSource resolves descriptors through the gRPC server
// reflection protocol (grpc.reflection.v1).
type ReflectionSource struct{}

// Resolve fetches the file descriptors containing fqService from the
// target and returns the descriptor for the named method.
func (ReflectionSource) Resolve(ctx context.Context, conn grpc.ClientConnInterface, fqService, method string) (protoreflect.MethodDescriptor, error) {
	client := reflectpb.NewServerReflectionClient(conn)
	stream, err := client.ServerReflectionInfo(ctx)
	if err != nil {
		return nil, callErrorf(KindDispatchFailure, "open reflection stream: %v", err)
	}

	req := &reflectpb.ServerReflectionRequest{
		MessageRequest: &reflectpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: fqService,
		},
	}
	if err := stream.Send(req); err != nil {
		return nil, callErrorf(KindDispatchFailure, "send reflection request: %v", err)
	}
	resp, err := stream.Recv()
	if err != nil {
		if err == io.EOF {
			return nil, callErrorf(KindDispatchFailure, "reflection stream closed by target")
		}
		return nil, callErrorf(KindDispatchFailure, "receive reflection response: %v", err)
	}
	_ = stream.CloseSend()

	var raw [][]byte
	switch r := resp.GetMessageResponse().(type) {
	case *reflectpb.ServerReflectionResponse_FileDescriptorResponse:
		raw = r.FileDescriptorResponse.GetFileDescriptorProto()
	case *reflectpb.ServerReflectionResponse_ErrorResponse:
		return nil, callErrorf(KindNotFound, "target does not expose service %q: %s",
			fqService, r.ErrorResponse.GetErrorMessage())
	default:
		return nil, callErrorf(KindDispatchFailure, "unexpected reflection response %T", r)
	}

	files, err := buildFiles(raw)
	if err != nil {
		return nil, callErrorf(KindDispatchFailure, "assemble descriptors: %v", err)
	}

	desc, err := files.FindDescriptorByName(protoreflect.FullName(fqService))
	if err != nil {
		return nil, callErrorf(KindNotFound, "service %q not found in reflection data", fqService)
	}
	sd, ok := desc.(protoreflect.ServiceDescriptor)
	if !ok {
		return nil, callErrorf(KindNotFound, "%q is not a service", fqService)
	}
	md := sd.Methods().ByName(protoreflect.Name(method))
	if md == nil {
		return nil, callErrorf(KindNotFound, "method %q not found on service %q", method, fqService)
	}
	return md, nil
}

// buildFiles converts the raw FileDescriptorProto blobs into a
// resolvable file registry. Servers include transitive dependencies,
// possibly with duplicates.
func buildFiles(raw [][]byte) (*protoregistry.Files, error) {
	fdset := &descriptorpb.FileDescriptorSet{}
	seen := make(map[string]bool)
	for _, b := range raw {
		fd := &descriptorpb.FileDescriptorProto{}
		if err := proto.Unmarshal(b, fd); err != nil {
			return nil, fmt.Errorf("unmarshal file descriptor: %w", err)
		}
		if seen[fd.GetName()] {
			continue
		}
		seen[fd.GetName()] = true
		fdset.File = append(fdset.File, fd)
	}
	return protodesc.NewFiles(fdset)
}
