// Package configutil holds the configuration blocks shared by every service
// binary and the YAML loading they go through.
package configutil

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// APIConfig is the public HTTP listener.
type APIConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GRPCConfig is the internal health listener.
type GRPCConfig struct {
	Port int `yaml:"port"`
}

// ConsulConfig locates the consul agent.
type ConsulConfig struct {
	Address string `yaml:"address"`
}

// ServiceDiscoveryConfig selects the registry.
type ServiceDiscoveryConfig struct {
	Consul ConsulConfig `yaml:"consul"`
}

// JaegerConfig locates the jaeger agent.
type JaegerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// HTTPClientConfig configures calls to peer services.
type HTTPClientConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// RateLimitConfig configures the inbound limiter.
type RateLimitConfig struct {
	Limit int `yaml:"limit"`
	Burst int `yaml:"burst"`
}

// Base is embedded inline by every service config.
type Base struct {
	API              APIConfig              `yaml:"api"`
	GRPC             GRPCConfig             `yaml:"grpc"`
	ServiceDiscovery ServiceDiscoveryConfig `yaml:"serviceDiscovery"`
	Jaeger           JaegerConfig           `yaml:"jaeger"`
	HTTP             HTTPClientConfig       `yaml:"http"`
	RateLimit        RateLimitConfig        `yaml:"rateLimit"`
}

// Load decodes the YAML file at path into cfg.
func Load(path string, cfg any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyDefaults fills unset values and then applies environment overrides.
func (b *Base) ApplyDefaults() {
	if b.API.Host == "" {
		b.API.Host = "localhost"
	}
	if b.ServiceDiscovery.Consul.Address == "" {
		b.ServiceDiscovery.Consul.Address = "localhost:8500"
	}
	if b.Jaeger.Host == "" {
		b.Jaeger.Host = "localhost"
	}
	if b.Jaeger.Port == "" {
		b.Jaeger.Port = "6831"
	}
	if b.HTTP.Timeout <= 0 {
		b.HTTP.Timeout = 5 * time.Second
	}
	if b.RateLimit.Limit <= 0 {
		b.RateLimit.Limit = 1000
	}
	if b.RateLimit.Burst <= 0 {
		b.RateLimit.Burst = b.RateLimit.Limit
	}

	b.API.Host = EnvOrDefault("API_HOST", b.API.Host)
	b.API.Port = EnvInt("API_PORT", b.API.Port)
	b.GRPC.Port = EnvInt("GRPC_PORT", b.GRPC.Port)
	b.ServiceDiscovery.Consul.Address = EnvOrDefault("CONSUL_ADDR", b.ServiceDiscovery.Consul.Address)
	b.Jaeger.Host = EnvOrDefault("JAEGER_AGENT_HOST", b.Jaeger.Host)
	b.Jaeger.Port = EnvOrDefault("JAEGER_AGENT_PORT", b.Jaeger.Port)
}

// EnvOrDefault returns the environment variable name, or fallback when unset.
func EnvOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// EnvInt returns the integer environment variable name, or fallback when
// unset or unparsable.
func EnvInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
