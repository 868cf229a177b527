package api

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	reflectpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/meshwork-io/grpc-hub/internal/registry"
)

type echoServiceInfo struct{}

func (echoServiceInfo) GetServiceInfo() map[string]grpc.ServiceInfo {
	return map[string]grpc.ServiceInfo{"echo.EchoService": {}}
}

// startEchoDownstream serves echo.EchoService (Double: doubles x into y)
// on a loopback listener, with server reflection so the proxy can shape
// the call.
func startEchoDownstream(t *testing.T) (host, port string) {
	t.Helper()

	field := func(name string) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(1),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:     descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
			JsonName: proto.String(name),
		}
	}
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("echo/echo.proto"),
		Package: proto.String("echo"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: proto.String("DoubleRequest"), Field: []*descriptorpb.FieldDescriptorProto{field("x")}},
			{Name: proto.String("DoubleResponse"), Field: []*descriptorpb.FieldDescriptorProto{field("y")}},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("EchoService"),
			Method: []*descriptorpb.MethodDescriptorProto{{
				Name:       proto.String("Double"),
				InputType:  proto.String(".echo.DoubleRequest"),
				OutputType: proto.String(".echo.DoubleResponse"),
			}},
		}},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	if err != nil {
		t.Fatalf("build echo descriptor: %v", err)
	}
	files := &protoregistry.Files{}
	if err := files.RegisterFile(fd); err != nil {
		t.Fatalf("register echo descriptor: %v", err)
	}
	md := fd.Services().Get(0).Methods().Get(0)

	handler := func(srv any, stream grpc.ServerStream) error {
		in := dynamicpb.NewMessage(md.Input())
		if err := stream.RecvMsg(in); err != nil {
			return err
		}
		x := in.Get(md.Input().Fields().ByName("x")).Int()
		out := dynamicpb.NewMessage(md.Output())
		out.Set(md.Output().Fields().ByName("y"), protoreflect.ValueOfInt32(int32(x*2)))
		return stream.SendMsg(out)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := grpc.NewServer(grpc.UnknownServiceHandler(handler))
	reflectpb.RegisterServerReflectionServer(srv, reflection.NewServerV1(reflection.ServerOptions{
		Services:           echoServiceInfo{},
		DescriptorResolver: files,
	}))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	addr := lis.Addr().(*net.TCPAddr)
	return "127.0.0.1", strconv.Itoa(addr.Port)
}

func TestHandleGRPCCall_Success(t *testing.T) {
	s, store, _ := newTestServer(t)
	host, port := startEchoDownstream(t)

	if _, err := store.Register(registry.Registration{
		Name:    "echo-service",
		FQName:  "echo.EchoService",
		Version: "1.0.0",
		Address: host,
		Port:    port,
		Methods: []string{"Double(DoubleRequest)"},
	}); err != nil {
		t.Fatalf("register echo service: %v", err)
	}

	body := `{"service":"echo-service","method":"Double","input":{"x":21}}`
	req := httptest.NewRequest(http.MethodPost, "/api/grpc-call", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body)
	}
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Data["y"] != 42 {
		t.Errorf(`data = %v, want {"y":42}`, resp.Data)
	}
}
