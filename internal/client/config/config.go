package config

import "time"

// Config holds runtime settings for the share CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - DownloadDir: subdirectory (under the working directory) where
//     fetched files are written.
//   - RequestTimeout: per-RPC deadline for calls to the server.
//
// Units: RequestTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	ServerEndpointAddr string
	DownloadDir        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DownloadDir = "downloads"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
