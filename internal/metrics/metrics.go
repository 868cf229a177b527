// Package metrics exposes Prometheus collectors for the hub. All
// collectors register themselves on the default registry and are served
// through the HTTP surface's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegisteredServices tracks the current number of registry records
	// by status.
	RegisteredServices = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hub_registered_services",
			Help: "Current registry records by status",
		},
		[]string{"status"},
	)

	// EventsPublished counts events published on the bus by type.
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_events_published_total",
			Help: "Events published on the bus by event type",
		},
		[]string{"event_type"},
	)

	// EventsDropped counts events dropped because a subscriber's buffer
	// was full.
	EventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hub_events_dropped_total",
			Help: "Events dropped due to slow subscribers",
		},
	)

	// EventSubscribers tracks the number of attached event subscribers.
	EventSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hub_event_subscribers",
			Help: "Currently attached event subscribers",
		},
	)

	// ProxyCalls counts forwarded calls by outcome.
	ProxyCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_proxy_calls_total",
			Help: "Forwarded calls by outcome",
		},
		[]string{"outcome"},
	)

	// ProxyCallDuration observes forwarded call latency in seconds.
	ProxyCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hub_proxy_call_seconds",
			Help:    "Forwarded call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
