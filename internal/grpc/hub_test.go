package grpc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/meshwork-io/grpc-hub/internal/events"
	"github.com/meshwork-io/grpc-hub/internal/proxy"
	"github.com/meshwork-io/grpc-hub/internal/registry"
	hubv1 "github.com/meshwork-io/grpc-hub/proto/gen/go/hub/v1"
)

// startHub brings up a full gRPC surface on a loopback listener and
// returns a connected client.
func startHub(t *testing.T) (hubv1.HubServiceClient, *registry.Store, *events.Bus) {
	t.Helper()

	bus := events.NewBus(nil)
	store := registry.New(bus)
	px := proxy.New(store, nil, 2*time.Second, nil)

	srv, err := NewServer("127.0.0.1:0", NewHubService(store, bus, px, nil), nil)
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	go func() { _ = srv.Start() }()
	t.Cleanup(srv.Stop)
	t.Cleanup(bus.Close)

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial hub: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return hubv1.NewHubServiceClient(conn), store, bus
}

func registerRequest(name, port string) *hubv1.RegisterServiceRequest {
	return &hubv1.RegisterServiceRequest{
		ServiceName:    name,
		ServiceVersion: "1.0.0",
		ServiceAddress: "127.0.0.1",
		ServicePort:    port,
		Methods:        []string{"GetDividendHistory(GetDividendHistoryRequest)"},
		Metadata:       map[string]string{"env": "prod"},
	}
}

func TestHubService_RegisterAndList(t *testing.T) {
	client, _, _ := startHub(t)
	ctx := context.Background()

	reg, err := client.RegisterService(ctx, registerRequest("dividend-service", "9001"))
	if err != nil {
		t.Fatalf("RegisterService returned error: %v", err)
	}
	if !reg.GetSuccess() {
		t.Fatalf("RegisterService failed: %s", reg.GetMessage())
	}
	if reg.GetServiceId() == "" {
		t.Fatal("expected a service id")
	}

	list, err := client.ListServices(ctx, &hubv1.ListServicesRequest{})
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(list.GetServices()) != 1 {
		t.Fatalf("got %d services, want 1", len(list.GetServices()))
	}
	svc := list.GetServices()[0]
	if svc.GetServiceId() != reg.GetServiceId() {
		t.Errorf("service_id = %q, want %q", svc.GetServiceId(), reg.GetServiceId())
	}
	if svc.GetStatus() != registry.StatusOnline {
		t.Errorf("status = %q, want online", svc.GetStatus())
	}
	if svc.GetFqServiceName() != "dividend-service" {
		t.Errorf("fq_service_name = %q, want fallback to service name", svc.GetFqServiceName())
	}
	if _, err := time.Parse(time.RFC3339Nano, svc.GetRegisteredAt()); err != nil {
		t.Errorf("registered_at %q is not RFC 3339: %v", svc.GetRegisteredAt(), err)
	}
}

func TestHubService_Register_InvalidPort(t *testing.T) {
	client, _, _ := startHub(t)

	resp, err := client.RegisterService(context.Background(), registerRequest("svc", "not-a-port"))
	if err != nil {
		t.Fatalf("RegisterService returned transport error: %v", err)
	}
	if resp.GetSuccess() {
		t.Error("expected success=false for invalid port")
	}
	if resp.GetMessage() == "" {
		t.Error("expected a failure message")
	}
}

func TestHubService_GetService(t *testing.T) {
	client, _, _ := startHub(t)
	ctx := context.Background()

	reg, _ := client.RegisterService(ctx, registerRequest("svc", "9001"))

	got, err := client.GetService(ctx, &hubv1.GetServiceRequest{ServiceId: reg.GetServiceId()})
	if err != nil {
		t.Fatalf("GetService returned error: %v", err)
	}
	if !got.GetFound() {
		t.Fatal("expected found=true")
	}
	if got.GetService().GetServiceName() != "svc" {
		t.Errorf("service_name = %q, want svc", got.GetService().GetServiceName())
	}

	missing, err := client.GetService(ctx, &hubv1.GetServiceRequest{ServiceId: "no-such-id"})
	if err != nil {
		t.Fatalf("GetService returned error: %v", err)
	}
	if missing.GetFound() {
		t.Error("expected found=false for unknown id")
	}
}

func TestHubService_HealthCheck(t *testing.T) {
	client, store, _ := startHub(t)
	ctx := context.Background()

	reg, _ := client.RegisterService(ctx, registerRequest("svc", "9001"))

	resp, err := client.HealthCheck(ctx, &hubv1.HealthCheckRequest{
		ServiceId: reg.GetServiceId(),
		Status:    registry.StatusBusy,
	})
	if err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
	if !resp.GetHealthy() {
		t.Fatalf("HealthCheck failed: %s", resp.GetMessage())
	}

	rec, err := store.Get(reg.GetServiceId())
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != registry.StatusBusy {
		t.Errorf("status = %q, want busy", rec.Status)
	}

	missing, err := client.HealthCheck(ctx, &hubv1.HealthCheckRequest{ServiceId: "no-such-id"})
	if err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
	if missing.GetHealthy() {
		t.Error("expected healthy=false for unknown id")
	}
}

func TestHubService_Unregister(t *testing.T) {
	client, _, _ := startHub(t)
	ctx := context.Background()

	reg, _ := client.RegisterService(ctx, registerRequest("svc", "9001"))

	resp, err := client.UnregisterService(ctx, &hubv1.UnregisterServiceRequest{ServiceId: reg.GetServiceId()})
	if err != nil {
		t.Fatalf("UnregisterService returned error: %v", err)
	}
	if !resp.GetSuccess() {
		t.Fatalf("UnregisterService failed: %s", resp.GetMessage())
	}

	list, _ := client.ListServices(ctx, &hubv1.ListServicesRequest{})
	if len(list.GetServices()) != 0 {
		t.Errorf("got %d services after unregister, want 0", len(list.GetServices()))
	}

	again, err := client.UnregisterService(ctx, &hubv1.UnregisterServiceRequest{ServiceId: reg.GetServiceId()})
	if err != nil {
		t.Fatalf("UnregisterService returned error: %v", err)
	}
	if again.GetSuccess() {
		t.Error("expected success=false for unknown id")
	}
}

func TestHubService_CallService_NoInstance(t *testing.T) {
	client, _, _ := startHub(t)

	resp, err := client.CallService(context.Background(), &hubv1.CallServiceRequest{
		ServiceName: "ghost",
		MethodName:  "DoThing",
		Payload:     "{}",
	})
	if err != nil {
		t.Fatalf("CallService returned transport error: %v", err)
	}
	if resp.GetSuccess() {
		t.Error("expected success=false for unknown service")
	}
	if resp.GetError() == "" {
		t.Error("expected an error message")
	}
}

func TestHubService_Subscribe(t *testing.T) {
	client, _, _ := startHub(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Subscribe(ctx, &hubv1.SubscribeRequest{})
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	first, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv returned error: %v", err)
	}
	if first.GetEventType() != events.TypeConnection {
		t.Fatalf("first event = %q, want connection", first.GetEventType())
	}

	reg, err := client.RegisterService(ctx, registerRequest("svc", "9001"))
	if err != nil {
		t.Fatal(err)
	}

	evt, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv returned error: %v", err)
	}
	if evt.GetEventType() != registry.EventServiceRegistered {
		t.Fatalf("event = %q, want service_registered", evt.GetEventType())
	}
	if evt.GetSeq() <= first.GetSeq() {
		t.Errorf("seq %d not greater than %d", evt.GetSeq(), first.GetSeq())
	}

	var rec registry.Record
	if err := json.Unmarshal([]byte(evt.GetData()), &rec); err != nil {
		t.Fatalf("event data is not a record: %v", err)
	}
	if rec.ID != reg.GetServiceId() {
		t.Errorf("event record id = %q, want %q", rec.ID, reg.GetServiceId())
	}
}

func TestHubService_Subscribe_NameFilter(t *testing.T) {
	client, _, _ := startHub(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Subscribe(ctx, &hubv1.SubscribeRequest{ServiceName: "wanted"})
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if _, err := stream.Recv(); err != nil { // connection event
		t.Fatal(err)
	}

	if _, err := client.RegisterService(ctx, registerRequest("ignored", "9001")); err != nil {
		t.Fatal(err)
	}
	if _, err := client.RegisterService(ctx, registerRequest("wanted", "9002")); err != nil {
		t.Fatal(err)
	}

	evt, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv returned error: %v", err)
	}
	if evt.GetServiceName() != "wanted" {
		t.Errorf("got event for %q, want only wanted", evt.GetServiceName())
	}
}
