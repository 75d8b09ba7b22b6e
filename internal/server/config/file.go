package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophtasks/internal/flagx"
	"github.com/dmitrijs2005/gophtasks/internal/timex"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Only keys present in
// the file override the current values, so every field is a pointer.
type FileConfig struct {
	HTTPAddr            *string         `json:"http_addr" yaml:"http_addr"`
	GRPCAddr            *string         `json:"grpc_addr" yaml:"grpc_addr"`
	DatabaseDSN         *string         `json:"database_dsn" yaml:"database_dsn"`
	DatabaseName        *string         `json:"database_name" yaml:"database_name"`
	SecretKey           *string         `json:"secret_key" yaml:"secret_key"`
	TokenValidity       *timex.Duration `json:"token_validity" yaml:"token_validity"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	HealthCheckInterval *timex.Duration `json:"health_check_interval" yaml:"health_check_interval"`
	AllowedOrigin       *string         `json:"allowed_origin" yaml:"allowed_origin"`
	LogLevel            *string         `json:"log_level" yaml:"log_level"`
	S3RootUser          *string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword      *string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket            *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region            *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint      *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	ExportURLValidity   *timex.Duration `json:"export_url_validity" yaml:"export_url_validity"`
}

// parseFile loads configuration values from the file named by -c/-config.
// Files ending in .yaml or .yml are decoded as YAML; anything else is read as
// JSON, with comments and trailing commas allowed.
//
// If no file is given nothing changes. An unreadable or malformed file panics,
// the same way bad flags do.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	if flagx.IsYAML(path) {
		err = yaml.Unmarshal(data, fc)
	} else {
		err = json.Unmarshal(jsonc.ToJSON(data), fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.HTTPAddr, fc.HTTPAddr)
	setString(&c.GRPCAddr, fc.GRPCAddr)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.DatabaseName, fc.DatabaseName)
	setString(&c.SecretKey, fc.SecretKey)
	setString(&c.AllowedOrigin, fc.AllowedOrigin)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.S3RootUser, fc.S3RootUser)
	setString(&c.S3RootPassword, fc.S3RootPassword)
	setString(&c.S3Bucket, fc.S3Bucket)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)

	if fc.TokenValidity != nil {
		c.TokenValidity = fc.TokenValidity.Duration
	}
	if fc.RequestTimeout != nil {
		c.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.HealthCheckInterval != nil {
		c.HealthCheckInterval = fc.HealthCheckInterval.Duration
	}
	if fc.ExportURLValidity != nil {
		c.ExportURLValidity = fc.ExportURLValidity.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
