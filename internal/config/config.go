package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the hub.
type Config struct {
	// GRPC configures the gRPC listener for the registry API.
	GRPC ListenConfig `yaml:"grpc"`

	// HTTP configures the HTTP/JSON listener.
	HTTP ListenConfig `yaml:"http"`

	// Registry configures liveness sweeping.
	Registry RegistryConfig `yaml:"registry"`

	// Proxy configures forwarded calls.
	Proxy ProxyConfig `yaml:"proxy"`
}

// ListenConfig is a host/port pair for a listener. The port stays
// numeric here; only registry records carry textual ports.
type ListenConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Address returns the host:port listen address.
func (l ListenConfig) Address() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// RegistryConfig configures the liveness monitor.
type RegistryConfig struct {
	// SweepInterval is how often the monitor examines records.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// OfflineThreshold is the heartbeat age past which a record is
	// marked offline.
	OfflineThreshold time.Duration `yaml:"offline_threshold"`
}

// ProxyConfig configures outbound forwarded calls.
type ProxyConfig struct {
	// CallTimeout bounds each forwarded call.
	CallTimeout time.Duration `yaml:"call_timeout"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		GRPC: ListenConfig{
			Host: "0.0.0.0",
			Port: 50099,
		},
		HTTP: ListenConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Registry: RegistryConfig{
			SweepInterval:    10 * time.Second,
			OfflineThreshold: 30 * time.Second,
		},
		Proxy: ProxyConfig{
			CallTimeout: 30 * time.Second,
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
