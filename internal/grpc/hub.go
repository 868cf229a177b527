package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/meshwork-io/grpc-hub/internal/events"
	"github.com/meshwork-io/grpc-hub/internal/proxy"
	"github.com/meshwork-io/grpc-hub/internal/registry"
	hubv1 "github.com/meshwork-io/grpc-hub/proto/gen/go/hub/v1"
)

// HubService implements the hub.v1.HubService API over the registry,
// the event bus and the call proxy. Lookup failures surface through the
// response flags rather than RPC status codes, so clients can always
// decode a typed response.
type HubService struct {
	hubv1.UnimplementedHubServiceServer

	store  *registry.Store
	bus    *events.Bus
	proxy  *proxy.Proxy
	logger *slog.Logger
}

// NewHubService creates the HubService handler.
func NewHubService(store *registry.Store, bus *events.Bus, px *proxy.Proxy, logger *slog.Logger) *HubService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HubService{
		store:  store,
		bus:    bus,
		proxy:  px,
		logger: logger.With("component", "hub"),
	}
}

// RegisterService inserts a new registry record. Re-registering the
// same (name, address, port) triple replaces the previous record.
func (h *HubService) RegisterService(ctx context.Context, req *hubv1.RegisterServiceRequest) (*hubv1.RegisterServiceResponse, error) {
	rec, err := h.store.Register(registry.Registration{
		Name:     req.GetServiceName(),
		FQName:   req.GetFqServiceName(),
		Version:  req.GetServiceVersion(),
		Address:  req.GetServiceAddress(),
		Port:     req.GetServicePort(),
		Methods:  req.GetMethods(),
		Metadata: req.GetMetadata(),
	})
	if err != nil {
		return &hubv1.RegisterServiceResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	h.logger.Info("service registered",
		"service_id", rec.ID,
		"service_name", rec.Name,
		"address", rec.Address,
		"port", rec.Port,
	)
	return &hubv1.RegisterServiceResponse{
		Success:   true,
		Message:   "service registered",
		ServiceId: rec.ID,
	}, nil
}

// UnregisterService removes a record by id.
func (h *HubService) UnregisterService(ctx context.Context, req *hubv1.UnregisterServiceRequest) (*hubv1.UnregisterServiceResponse, error) {
	if err := h.store.Unregister(req.GetServiceId()); err != nil {
		return &hubv1.UnregisterServiceResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	h.logger.Info("service unregistered", "service_id", req.GetServiceId())
	return &hubv1.UnregisterServiceResponse{
		Success: true,
		Message: "service unregistered",
	}, nil
}

// ListServices returns registered records, optionally filtered by
// exact name and/or version.
func (h *HubService) ListServices(ctx context.Context, req *hubv1.ListServicesRequest) (*hubv1.ListServicesResponse, error) {
	records := h.store.List(registry.Filter{
		Name:    req.GetName(),
		Version: req.GetVersion(),
	})

	resp := &hubv1.ListServicesResponse{
		Services: make([]*hubv1.ServiceInfo, 0, len(records)),
	}
	for _, rec := range records {
		resp.Services = append(resp.Services, recordToProto(rec))
	}
	return resp, nil
}

// GetService returns a single record by id.
func (h *HubService) GetService(ctx context.Context, req *hubv1.GetServiceRequest) (*hubv1.GetServiceResponse, error) {
	rec, err := h.store.Get(req.GetServiceId())
	if err != nil {
		return &hubv1.GetServiceResponse{Found: false}, nil
	}
	return &hubv1.GetServiceResponse{
		Service: recordToProto(rec),
		Found:   true,
	}, nil
}

// HealthCheck records a heartbeat and optionally applies a status
// transition.
func (h *HubService) HealthCheck(ctx context.Context, req *hubv1.HealthCheckRequest) (*hubv1.HealthCheckResponse, error) {
	err := h.store.Heartbeat(req.GetServiceId(), req.GetStatus())
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return &hubv1.HealthCheckResponse{
			Healthy: false,
			Message: "service not found",
		}, nil
	case err != nil:
		return &hubv1.HealthCheckResponse{
			Healthy: false,
			Message: err.Error(),
		}, nil
	}
	return &hubv1.HealthCheckResponse{
		Healthy: true,
		Message: "heartbeat recorded",
	}, nil
}

// CallService forwards a JSON-shaped call to a registered service.
func (h *HubService) CallService(ctx context.Context, req *hubv1.CallServiceRequest) (*hubv1.CallServiceResponse, error) {
	data, err := h.proxy.Call(ctx, proxy.Request{
		Service: req.GetServiceName(),
		Method:  req.GetMethodName(),
		Payload: []byte(req.GetPayload()),
		Host:    req.GetHost(),
		Port:    req.GetPort(),
	})
	if err != nil {
		h.logger.Warn("forwarded call failed",
			"service_name", req.GetServiceName(),
			"method_name", req.GetMethodName(),
			"error", err,
		)
		return &hubv1.CallServiceResponse{
			Success: false,
			Error:   err.Error(),
		}, nil
	}
	return &hubv1.CallServiceResponse{
		Success: true,
		Payload: string(data),
	}, nil
}

// Subscribe streams registry events to the caller until it disconnects.
// A non-empty service_name narrows the stream to events about that
// service; the synthetic connection event always passes.
func (h *HubService) Subscribe(req *hubv1.SubscribeRequest, stream hubv1.HubService_SubscribeServer) error {
	sub := h.bus.Subscribe()
	defer h.bus.Unsubscribe(sub)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-sub.C():
			if !ok {
				return nil
			}
			if req.GetServiceName() != "" &&
				evt.Type != events.TypeConnection &&
				evt.ServiceName != req.GetServiceName() {
				continue
			}
			msg, err := eventToProto(evt)
			if err != nil {
				h.logger.Error("encode event", "error", err)
				continue
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
	}
}

func recordToProto(rec *registry.Record) *hubv1.ServiceInfo {
	return &hubv1.ServiceInfo{
		ServiceId:      rec.ID,
		ServiceName:    rec.Name,
		FqServiceName:  rec.FQName,
		ServiceVersion: rec.Version,
		ServiceAddress: rec.Address,
		ServicePort:    rec.Port,
		Methods:        rec.Methods,
		Metadata:       rec.Metadata,
		RegisteredAt:   rec.RegisteredAt.Format(time.RFC3339Nano),
		LastHeartbeat:  rec.LastHeartbeat.Format(time.RFC3339Nano),
		Status:         rec.Status,
	}
}

func eventToProto(evt events.Event) (*hubv1.ServiceEvent, error) {
	data, err := json.Marshal(evt.Data)
	if err != nil {
		return nil, err
	}
	return &hubv1.ServiceEvent{
		EventType:   evt.Type,
		ServiceName: evt.ServiceName,
		Data:        string(data),
		Timestamp:   evt.Timestamp.Format(time.RFC3339Nano),
		Seq:         evt.Seq,
	}, nil
}
