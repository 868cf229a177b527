// Package proxy forwards JSON-shaped calls to registered services. The
// request message is shaped at runtime from the target's reflection
// data, so the hub needs no compile-time knowledge of tenant schemas.
package proxy

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/meshwork-io/grpc-hub/internal/metrics"
	"github.com/meshwork-io/grpc-hub/internal/registry"
)

// DefaultCallTimeout bounds a forwarded call end to end, including
// descriptor resolution.
const DefaultCallTimeout = 30 * time.Second

// Request describes one forwarded call. Host and Port are optional but
// must be set together; when empty the proxy picks a dispatchable
// instance of Service by round-robin.
type Request struct {
	Service string
	Method  string
	Payload []byte
	Host    string
	Port    string
}

type cacheKey struct {
	host    string
	port    string
	service string
	method  string
}

// Proxy relays calls to downstream services. Descriptors are cached per
// endpoint and method for the process lifetime; responses are never
// cached.
type Proxy struct {
	store   *registry.Store
	source  DescriptorSource
	timeout time.Duration
	logger  *slog.Logger

	mu    sync.Mutex
	cache map[cacheKey]protoreflect.MethodDescriptor
}

// New creates a proxy over the registry. A nil source falls back to
// server reflection; a zero timeout falls back to DefaultCallTimeout.
func New(store *registry.Store, source DescriptorSource, timeout time.Duration, logger *slog.Logger) *Proxy {
	if source == nil {
		source = ReflectionSource{}
	}
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Proxy{
		store:   store,
		source:  source,
		timeout: timeout,
		logger:  logger.With("component", "proxy"),
		cache:   make(map[cacheKey]protoreflect.MethodDescriptor),
	}
}

// Call forwards the request and returns the downstream response as
// JSON. Errors are *CallError values whose kind tells the surface layer
// which status to report.
func (p *Proxy) Call(ctx context.Context, req Request) ([]byte, error) {
	start := time.Now()
	out, err := p.call(ctx, req)
	metrics.ProxyCallDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProxyCalls.WithLabelValues(Kind(err)).Inc()
		return nil, err
	}
	metrics.ProxyCalls.WithLabelValues("success").Inc()
	return out, nil
}

func (p *Proxy) call(ctx context.Context, req Request) ([]byte, error) {
	if req.Service == "" {
		return nil, callErrorf(KindInvalidArgument, "service name must not be empty")
	}
	if req.Method == "" {
		return nil, callErrorf(KindInvalidArgument, "method name must not be empty")
	}

	host, port, fqService, err := p.resolveTarget(req)
	if err != nil {
		return nil, err
	}
	target := net.JoinHostPort(host, port)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, callErrorf(KindDispatchFailure, "dial %s: %v", target, err)
	}
	defer conn.Close()

	md, err := p.descriptor(ctx, conn, host, port, fqService, req.Method)
	if err != nil {
		return nil, err
	}

	payload := req.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	in := dynamicpb.NewMessage(md.Input())
	if err := protojson.Unmarshal(payload, in); err != nil {
		return nil, callErrorf(KindInvalidArgument, "payload does not match %s request shape: %v", req.Method, err)
	}

	out := dynamicpb.NewMessage(md.Output())
	fullMethod := "/" + fqService + "/" + req.Method
	p.logger.Debug("forwarding call", "target", target, "method", fullMethod)

	if err := conn.Invoke(ctx, fullMethod, in, out); err != nil {
		return nil, classifyInvokeError(err, target)
	}

	data, err := protojson.Marshal(out)
	if err != nil {
		return nil, callErrorf(KindInternal, "encode response: %v", err)
	}
	return data, nil
}

// resolveTarget picks the downstream endpoint and its fully qualified
// service name. Explicit host/port bypasses dispatch selection; the
// registry is still consulted for the fq name when it knows the
// service.
func (p *Proxy) resolveTarget(req Request) (host, port, fqService string, err error) {
	if (req.Host != "") != (req.Port != "") {
		return "", "", "", callErrorf(KindInvalidArgument, "target host and port must be given together")
	}
	if req.Host != "" && req.Port != "" {
		fqService = req.Service
		for _, rec := range p.store.List(registry.Filter{Name: req.Service}) {
			if rec.Address == req.Host && rec.Port == req.Port {
				fqService = rec.FQName
				break
			}
		}
		return req.Host, req.Port, fqService, nil
	}

	rec, lookupErr := p.store.LookupForDispatch(req.Service)
	if lookupErr != nil {
		if errors.Is(lookupErr, registry.ErrNotFound) {
			return "", "", "", callErrorf(KindNotFound, "no dispatchable instance of %q", req.Service)
		}
		return "", "", "", callErrorf(KindInternal, "lookup %q: %v", req.Service, lookupErr)
	}
	return rec.Address, rec.Port, rec.FQName, nil
}

func (p *Proxy) descriptor(ctx context.Context, conn grpc.ClientConnInterface, host, port, fqService, method string) (protoreflect.MethodDescriptor, error) {
	key := cacheKey{host: host, port: port, service: fqService, method: method}

	p.mu.Lock()
	md, ok := p.cache[key]
	p.mu.Unlock()
	if ok {
		return md, nil
	}

	md, err := p.source.Resolve(ctx, conn, fqService, method)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.cache[key] = md
	p.mu.Unlock()
	return md, nil
}

func classifyInvokeError(err error, target string) error {
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.DeadlineExceeded:
			return callErrorf(KindTimeout, "call to %s timed out", target)
		case codes.InvalidArgument:
			return callErrorf(KindInvalidArgument, "target rejected request: %s", st.Message())
		}
	}
	return callErrorf(KindDispatchFailure, "call to %s failed: %v", target, err)
}
