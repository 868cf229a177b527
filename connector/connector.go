// Package connector is the client-side companion for services
// registered with the hub. It discovers instances with a local cache,
// rotates among replicas of the same logical name, and reports status
// transitions back to the hub.
package connector

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	hubv1 "github.com/meshwork-io/grpc-hub/proto/gen/go/hub/v1"
)

// Defaults for the hub endpoint and the discovery cache.
const (
	DefaultHubHost       = "127.0.0.1"
	DefaultHubPort       = 50099
	DefaultCacheDuration = 30 * time.Second
)

// Registration carries the fields announced to the hub.
type Registration struct {
	Name     string
	FQName   string
	Version  string
	Address  string
	Port     string
	Methods  []string
	Metadata map[string]string
}

// instance is one cached dispatchable endpoint.
type instance struct {
	host string
	port int
}

// cacheEntry holds the dispatchable instances of one logical name.
type cacheEntry struct {
	instances []instance
	fetched   time.Time
}

// Connector holds a long-lived channel to the hub. It is safe for
// concurrent use; its round-robin cursors are independent of the
// hub-side dispatch cursor.
type Connector struct {
	conn     *grpc.ClientConn
	client   hubv1.HubServiceClient
	cacheTTL time.Duration

	mu          sync.Mutex
	cache       map[string]*cacheEntry
	cursors     map[string]int
	lastRefresh time.Time
}

// Option customizes a Connector.
type Option func(*Connector)

// WithCacheDuration overrides how long a discovery result is reused
// before the hub is consulted again.
func WithCacheDuration(d time.Duration) Option {
	return func(c *Connector) { c.cacheTTL = d }
}

// New connects to the hub at host:port. The connection is established
// lazily; New fails only on an unusable address.
func New(host string, port int, opts ...Option) (*Connector, error) {
	if host == "" {
		host = DefaultHubHost
	}
	if port == 0 {
		port = DefaultHubPort
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to hub at %s: %w", addr, err)
	}

	c := &Connector{
		conn:     conn,
		client:   hubv1.NewHubServiceClient(conn),
		cacheTTL: DefaultCacheDuration,
		cache:    make(map[string]*cacheEntry),
		cursors:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close tears down the channel to the hub.
func (c *Connector) Close() error {
	return c.conn.Close()
}

// Register announces a service instance to the hub and returns its id.
func (c *Connector) Register(ctx context.Context, reg Registration) (string, error) {
	resp, err := c.client.RegisterService(ctx, &hubv1.RegisterServiceRequest{
		ServiceName:    reg.Name,
		FqServiceName:  reg.FQName,
		ServiceVersion: reg.Version,
		ServiceAddress: reg.Address,
		ServicePort:    reg.Port,
		Methods:        reg.Methods,
		Metadata:       reg.Metadata,
	})
	if err != nil {
		return "", fmt.Errorf("register %q: %w", reg.Name, err)
	}
	if !resp.GetSuccess() {
		return "", fmt.Errorf("register %q: %s", reg.Name, resp.GetMessage())
	}
	return resp.GetServiceId(), nil
}

// Unregister removes a registration by id.
func (c *Connector) Unregister(ctx context.Context, serviceID string) error {
	resp, err := c.client.UnregisterService(ctx, &hubv1.UnregisterServiceRequest{ServiceId: serviceID})
	if err != nil {
		return fmt.Errorf("unregister %s: %w", serviceID, err)
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("unregister %s: %s", serviceID, resp.GetMessage())
	}
	return nil
}

// Discover returns the endpoint of a dispatchable instance of the
// logical name. Instances are fetched from the hub at most once per
// cache duration; successive calls rotate among the cached replicas.
func (c *Connector) Discover(ctx context.Context, serviceName string) (string, int, error) {
	c.mu.Lock()
	entry, ok := c.cache[serviceName]
	if ok && time.Since(entry.fetched) < c.cacheTTL {
		host, port := c.pickLocked(serviceName, entry)
		c.mu.Unlock()
		return host, port, nil
	}
	c.mu.Unlock()

	instances, err := c.fetchInstances(ctx, serviceName)
	if err != nil {
		return "", 0, err
	}
	if len(instances) == 0 {
		return "", 0, fmt.Errorf("no dispatchable instance of %q", serviceName)
	}

	c.mu.Lock()
	entry = &cacheEntry{instances: instances, fetched: time.Now()}
	c.cache[serviceName] = entry
	c.lastRefresh = entry.fetched
	host, port := c.pickLocked(serviceName, entry)
	c.mu.Unlock()
	return host, port, nil
}

// pickLocked advances the per-name cursor. Caller must hold c.mu.
func (c *Connector) pickLocked(serviceName string, entry *cacheEntry) (string, int) {
	idx := c.cursors[serviceName] % len(entry.instances)
	c.cursors[serviceName] = idx + 1
	inst := entry.instances[idx]
	return inst.host, inst.port
}

func (c *Connector) fetchInstances(ctx context.Context, serviceName string) ([]instance, error) {
	resp, err := c.client.ListServices(ctx, &hubv1.ListServicesRequest{Name: serviceName})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	var instances []instance
	for _, svc := range resp.GetServices() {
		if svc.GetStatus() == "offline" {
			continue
		}
		port, err := strconv.Atoi(svc.GetServicePort())
		if err != nil {
			return nil, fmt.Errorf("invalid port %q for service %q: %w",
				svc.GetServicePort(), serviceName, err)
		}
		instances = append(instances, instance{host: svc.GetServiceAddress(), port: port})
	}
	return instances, nil
}

// ListAll returns every record the hub knows about, bypassing the
// cache.
func (c *Connector) ListAll(ctx context.Context) ([]*hubv1.ServiceInfo, error) {
	resp, err := c.client.ListServices(ctx, &hubv1.ListServicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return resp.GetServices(), nil
}

// IsOnline reports whether at least one instance of the logical name is
// currently online.
func (c *Connector) IsOnline(ctx context.Context, serviceName string) (bool, error) {
	resp, err := c.client.ListServices(ctx, &hubv1.ListServicesRequest{Name: serviceName})
	if err != nil {
		return false, fmt.Errorf("list services: %w", err)
	}
	for _, svc := range resp.GetServices() {
		if svc.GetStatus() == "online" {
			return true, nil
		}
	}
	return false, nil
}

// SetBusy reports the instance as busy to the hub.
func (c *Connector) SetBusy(ctx context.Context, serviceID string) error {
	return c.healthCheck(ctx, serviceID, "busy")
}

// SetOnline reports the instance as online to the hub.
func (c *Connector) SetOnline(ctx context.Context, serviceID string) error {
	return c.healthCheck(ctx, serviceID, "online")
}

// Heartbeat refreshes the instance's liveness without changing its
// status.
func (c *Connector) Heartbeat(ctx context.Context, serviceID string) error {
	return c.healthCheck(ctx, serviceID, "")
}

func (c *Connector) healthCheck(ctx context.Context, serviceID, status string) error {
	resp, err := c.client.HealthCheck(ctx, &hubv1.HealthCheckRequest{
		ServiceId: serviceID,
		Status:    status,
	})
	if err != nil {
		return fmt.Errorf("health check %s: %w", serviceID, err)
	}
	if !resp.GetHealthy() {
		return fmt.Errorf("health check %s: %s", serviceID, resp.GetMessage())
	}
	return nil
}

// ClearCache drops all cached discovery results, forcing the next
// Discover to consult the hub.
func (c *Connector) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*cacheEntry)
	c.lastRefresh = time.Time{}
}

// CacheInfo reports whether any discovery result is cached and when the
// cache was last refreshed.
func (c *Connector) CacheInfo() (bool, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache) > 0, c.lastRefresh
}
