package registry

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meshwork-io/grpc-hub/internal/metrics"
)

// Service status values. A record is dispatchable when it is not offline.
const (
	StatusOnline  = "online"
	StatusBusy    = "busy"
	StatusOffline = "offline"
)

// Event types published on registry mutations.
const (
	EventServiceRegistered   = "service_registered"
	EventServiceUnregistered = "service_unregistered"
	EventStatusChange        = "status_change"
)

var (
	// ErrNotFound is returned when no record matches the given id or,
	// for dispatch lookups, when no dispatchable instance exists.
	ErrNotFound = errors.New("service not found")

	// ErrInvalidStatus is returned when a caller requests a status
	// transition the state machine does not allow.
	ErrInvalidStatus = errors.New("invalid status transition")
)

// Record is one registered service instance. Timestamps serialize as
// RFC 3339; the port stays textual on the wire and is parsed only when
// the hub dials out.
type Record struct {
	ID            string            `json:"service_id"`
	Name          string            `json:"service_name"`
	FQName        string            `json:"fq_service_name"`
	Version       string            `json:"service_version"`
	Address       string            `json:"service_address"`
	Port          string            `json:"service_port"`
	Methods       []string          `json:"methods"`
	Metadata      map[string]string `json:"metadata"`
	RegisteredAt  time.Time         `json:"registered_at"`
	LastHeartbeat time.Time         `json:"last_heartbeat"`
	Status        string            `json:"status"`
}

// Registration carries the caller-supplied fields of a new record.
type Registration struct {
	Name     string
	FQName   string
	Version  string
	Address  string
	Port     string
	Methods  []string
	Metadata map[string]string
}

// Filter narrows List results. Empty fields match everything; non-empty
// fields require an exact match.
type Filter struct {
	Name    string
	Version string
}

// StatusChange is the payload of a status_change event.
type StatusChange struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Prev        string `json:"prev"`
	Next        string `json:"next"`
}

// Unregistered is the payload of a service_unregistered event.
type Unregistered struct {
	ServiceID string `json:"service_id"`
}

// Publisher receives registry change notifications. The store invokes
// it after releasing its lock, so implementations may call back into
// the store.
type Publisher interface {
	Publish(eventType, serviceName string, data any)
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, string, any) {}

// Store is the in-memory service registry. It is safe for concurrent
// use. Records live for the process lifetime unless explicitly removed;
// the liveness sweep only demotes them to offline.
type Store struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string       // ids in insertion order
	cursors map[string]int // round-robin cursor per logical name
	pub     Publisher
}

// New creates an empty registry. Mutations are announced through pub;
// pass nil to discard events.
func New(pub Publisher) *Store {
	if pub == nil {
		pub = noopPublisher{}
	}
	return &Store{
		records: make(map[string]*Record),
		cursors: make(map[string]int),
		pub:     pub,
	}
}

// Register inserts a new record with a fresh id and status online.
// Registering the same (name, address, port) triple again replaces the
// previous record; its old id is retired and never reused.
func (s *Store) Register(reg Registration) (*Record, error) {
	if reg.Name == "" {
		return nil, fmt.Errorf("service name must not be empty")
	}
	if err := validatePort(reg.Port); err != nil {
		return nil, err
	}

	fq := reg.FQName
	if fq == "" {
		fq = reg.Name
	}

	now := time.Now()
	rec := &Record{
		ID:            uuid.New().String(),
		Name:          reg.Name,
		FQName:        fq,
		Version:       reg.Version,
		Address:       reg.Address,
		Port:          reg.Port,
		Methods:       append([]string(nil), reg.Methods...),
		Metadata:      copyMetadata(reg.Metadata),
		RegisteredAt:  now,
		LastHeartbeat: now,
		Status:        StatusOnline,
	}

	s.mu.Lock()
	for id, existing := range s.records {
		if existing.Name == reg.Name && existing.Address == reg.Address && existing.Port == reg.Port {
			s.removeLocked(id)
			break
		}
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	s.updateGaugesLocked()
	snapshot := *rec
	s.mu.Unlock()

	s.pub.Publish(EventServiceRegistered, rec.Name, &snapshot)
	return &snapshot, nil
}

// Unregister removes a record by id.
func (s *Store) Unregister(id string) error {
	s.mu.Lock()
	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	name := rec.Name
	s.removeLocked(id)
	s.updateGaugesLocked()
	s.mu.Unlock()

	s.pub.Publish(EventServiceUnregistered, name, &Unregistered{ServiceID: id})
	return nil
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	snapshot := *rec
	return &snapshot, nil
}

// List returns a snapshot of records matching the filter, in insertion
// order.
func (s *Store) List(f Filter) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Record, 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		if f.Name != "" && rec.Name != f.Name {
			continue
		}
		if f.Version != "" && rec.Version != f.Version {
			continue
		}
		snapshot := *rec
		result = append(result, &snapshot)
	}
	return result
}

// LookupForDispatch returns one dispatchable record for the logical
// name, rotating through instances via a per-name cursor. Offline
// records are never returned.
func (s *Store) LookupForDispatch(name string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var eligible []*Record
	for _, id := range s.order {
		rec := s.records[id]
		if rec.Name == name && rec.Status != StatusOffline {
			eligible = append(eligible, rec)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNotFound
	}

	idx := s.cursors[name] % len(eligible)
	s.cursors[name] = idx + 1
	snapshot := *eligible[idx]
	return &snapshot, nil
}

// Heartbeat stamps last_heartbeat with the current time. A non-empty
// status additionally applies a transition; only "online" and "busy"
// are accepted here, offline is reserved for the liveness sweep. An
// offline record recovers only through "online"; a heartbeat carrying
// "busy" is rejected until the record is back online.
func (s *Store) Heartbeat(id, status string) error {
	s.mu.Lock()
	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	rec.LastHeartbeat = time.Now()

	var change *StatusChange
	if status != "" {
		if status != StatusOnline && status != StatusBusy {
			s.mu.Unlock()
			return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		if rec.Status == StatusOffline && status != StatusOnline {
			s.mu.Unlock()
			return fmt.Errorf("%w: offline record can only recover to %q", ErrInvalidStatus, StatusOnline)
		}
		if rec.Status != status {
			change = &StatusChange{
				ServiceID:   rec.ID,
				ServiceName: rec.Name,
				Prev:        rec.Status,
				Next:        status,
			}
			rec.Status = status
			s.updateGaugesLocked()
		}
	}
	s.mu.Unlock()

	if change != nil {
		s.pub.Publish(EventStatusChange, change.ServiceName, change)
	}
	return nil
}

// SetStatus applies an explicit status transition without touching the
// heartbeat. Offline records are rejected outright: leaving offline is
// reserved for re-registration and the heartbeat recovery path.
func (s *Store) SetStatus(id, status string) error {
	if status != StatusOnline && status != StatusBusy {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	if rec.Status == StatusOffline {
		s.mu.Unlock()
		return fmt.Errorf("%w: offline record recovers only via heartbeat or re-registration", ErrInvalidStatus)
	}
	var change *StatusChange
	if rec.Status != status {
		change = &StatusChange{
			ServiceID:   rec.ID,
			ServiceName: rec.Name,
			Prev:        rec.Status,
			Next:        status,
		}
		rec.Status = status
		s.updateGaugesLocked()
	}
	s.mu.Unlock()

	if change != nil {
		s.pub.Publish(EventStatusChange, change.ServiceName, change)
	}
	return nil
}

// MarkStale demotes every record whose heartbeat is older than the
// threshold to offline and returns the transitions applied. Records
// already offline are left alone, so repeated sweeps do not double-emit.
func (s *Store) MarkStale(threshold time.Duration) []StatusChange {
	s.mu.RLock()
	candidates := make([]string, 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		if rec.Status != StatusOffline && time.Since(rec.LastHeartbeat) > threshold {
			candidates = append(candidates, id)
		}
	}
	s.mu.RUnlock()

	var changes []StatusChange
	for _, id := range candidates {
		s.mu.Lock()
		rec, ok := s.records[id]
		// Re-check: the record may have heartbeat or been removed since
		// the snapshot.
		if !ok || rec.Status == StatusOffline || time.Since(rec.LastHeartbeat) <= threshold {
			s.mu.Unlock()
			continue
		}
		change := StatusChange{
			ServiceID:   rec.ID,
			ServiceName: rec.Name,
			Prev:        rec.Status,
			Next:        StatusOffline,
		}
		rec.Status = StatusOffline
		s.updateGaugesLocked()
		s.mu.Unlock()

		s.pub.Publish(EventStatusChange, change.ServiceName, &change)
		changes = append(changes, change)
	}
	return changes
}

// updateGaugesLocked refreshes the per-status record gauges.
// Caller must hold the write lock.
func (s *Store) updateGaugesLocked() {
	counts := map[string]int{StatusOnline: 0, StatusBusy: 0, StatusOffline: 0}
	for _, rec := range s.records {
		counts[rec.Status]++
	}
	for status, n := range counts {
		metrics.RegisteredServices.WithLabelValues(status).Set(float64(n))
	}
}

// removeLocked deletes a record and its insertion-order entry.
// Caller must hold the write lock.
func (s *Store) removeLocked(id string) {
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", port, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port %d out of range", n)
	}
	return nil
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
