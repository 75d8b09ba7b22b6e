package config

import "os"

// envLookup is a seam for tests.
var envLookup = os.LookupEnv

// parseEnv overlays the variables the original deployment used in its .env
// file. DATABASE_DSN wins over MONGO_URI when both are set.
//
//	PORT          HTTP port (":" is prepended when missing)
//	MONGO_URI     store connection string
//	DATABASE_DSN  store connection string
//	JWT_SECRET    token signing secret
//	LOG_LEVEL     log level
func parseEnv(config *Config) {
	if v, ok := envLookup("PORT"); ok && v != "" {
		if v[0] != ':' {
			v = ":" + v
		}
		config.HTTPAddr = v
	}
	if v, ok := envLookup("MONGO_URI"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := envLookup("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := envLookup("JWT_SECRET"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := envLookup("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
