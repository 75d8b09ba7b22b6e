// Package config handles configuration for the server component,
// including defaults, a config file overlay, environment variables and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the GophTasks server.
//
// Fields:
//   - HTTPAddr: bind address for the REST API.
//   - GRPCAddr: bind address for the gRPC health endpoint; empty disables it.
//   - DatabaseDSN: store connection string. The scheme selects the backend:
//     postgres:// (pgx), mongodb:// or mongodb+srv:// (MongoDB), or "memory".
//   - DatabaseName: MongoDB database name.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidity: lifetime of issued bearer tokens.
//   - RequestTimeout: upper bound for a single API request.
//   - HealthCheckInterval: how often the gRPC health watcher pings the store.
//   - AllowedOrigin: CORS origin of the browser client.
//   - LogLevel: debug, info, warn or error.
//   - S3*: object storage settings used by task export. Empty bucket disables export.
//   - ExportURLValidity: lifetime of presigned export download URLs.
type Config struct {
	HTTPAddr            string
	GRPCAddr            string
	DatabaseDSN         string
	DatabaseName        string
	SecretKey           string
	TokenValidity       time.Duration
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	AllowedOrigin       string
	LogLevel            string
	S3RootUser          string
	S3RootPassword      string
	S3Bucket            string
	S3Region            string
	S3BaseEndpoint      string
	ExportURLValidity   time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":5000"
	c.GRPCAddr = ":50051"
	c.DatabaseDSN = "mongodb://localhost:27017"
	c.DatabaseName = "taskmanager"
	c.SecretKey = "secretKey"
	c.TokenValidity = 1 * time.Hour
	c.RequestTimeout = 10 * time.Second
	c.HealthCheckInterval = 5 * time.Second
	c.AllowedOrigin = "http://localhost:5173"
	c.LogLevel = "info"
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.ExportURLValidity = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// ExportEnabled reports whether object storage is configured.
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}
