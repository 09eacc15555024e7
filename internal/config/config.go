package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds HTTP server configuration, loadable from a YAML file with
// environment overrides for secrets.
type Server struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	// APIKey guards /api/v1. An empty key disables auth for local
	// single-user use.
	APIKey string `yaml:"api_key"`
}

// DefaultServer returns the local-only defaults.
func DefaultServer() Server {
	return Server{
		Host:         "127.0.0.1",
		Port:         8080,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// LoadServer reads server configuration from path, layering it over the
// defaults. An empty path skips the file entirely. TRACKLIT_API_KEY in the
// environment wins over the file so the key never has to live on disk.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Server{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if key := os.Getenv("TRACKLIT_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Server{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
