// Package grpc provides the gRPC surface of the hub: the HubService
// registry API and server reflection.
package grpc

import (
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	hubv1 "github.com/meshwork-io/grpc-hub/proto/gen/go/hub/v1"
)

// Server wraps the gRPC server hosting the HubService API.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	handler    *HubService
	logger     *slog.Logger
}

// NewServer creates a gRPC server listening on addr and registers the
// HubService handler. Reflection is always enabled so tooling can
// discover the hub's own schema.
func NewServer(addr string, handler *HubService, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	gs := grpc.NewServer()
	hubv1.RegisterHubServiceServer(gs, handler)
	reflection.Register(gs)

	return &Server{
		listener:   lis,
		grpcServer: gs,
		handler:    handler,
		logger:     logger.With("component", "grpc"),
	}, nil
}

// Handler returns the HubService handler, allowing callers to drive
// the registry API without going through the wire.
func (s *Server) Handler() *HubService {
	return s.handler
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start begins accepting connections. It blocks until the server is
// stopped or an unrecoverable error occurs.
func (s *Server) Start() error {
	s.logger.Info("gRPC server starting", "addr", s.listener.Addr().String())
	return s.grpcServer.Serve(s.listener)
}

// Stop performs a graceful shutdown of the gRPC server.
func (s *Server) Stop() {
	s.logger.Info("gRPC server stopping")
	s.grpcServer.GracefulStop()
}
