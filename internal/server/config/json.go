package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/flagx"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15m"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	SecretKey        string `json:"secret_key"`
	LinkBaseURL      string `json:"link_base_url"`

	CodeValidityDuration       timex.Duration `json:"code_validity_duration"`
	MaxAttempts                int            `json:"max_attempts"`
	RateLimitWindow            timex.Duration `json:"rate_limit_window"`
	RateLimitMax               int            `json:"rate_limit_max"`
	GrantValidityDuration      timex.Duration `json:"grant_validity_duration"`
	InvitationValidityDuration timex.Duration `json:"invitation_validity_duration"`
	DeliveryGatewayURL         string         `json:"delivery_gateway_url"`
	DeliveryMaxRetries         int            `json:"delivery_max_retries"`
	PurgeInterval              timex.Duration `json:"purge_interval"`

	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// The file is read and unmarshalled into JsonConfig, and known fields are
// copied into the provided Config. Read or unmarshal errors panic; the
// intended usage is defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.LinkBaseURL = c.LinkBaseURL
	config.CodeValidityDuration = time.Duration(c.CodeValidityDuration.Duration)
	config.MaxAttempts = c.MaxAttempts
	config.RateLimitWindow = time.Duration(c.RateLimitWindow.Duration)
	config.RateLimitMax = c.RateLimitMax
	config.GrantValidityDuration = time.Duration(c.GrantValidityDuration.Duration)
	config.InvitationValidityDuration = time.Duration(c.InvitationValidityDuration.Duration)
	config.DeliveryGatewayURL = c.DeliveryGatewayURL
	config.DeliveryMaxRetries = c.DeliveryMaxRetries
	config.PurgeInterval = time.Duration(c.PurgeInterval.Duration)
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
