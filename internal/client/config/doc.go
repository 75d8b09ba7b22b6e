// Package config loads runtime configuration for the GophTasks client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseFile) selected via flags: -c or -config.
//     Comments and trailing commas are allowed.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-d string   path of the local sqlite database
//	-l int      tasks per page on the board
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:5000/api",
//	  "db_path": "gophtasks.db",
//	  "page_limit": 5,
//	  "request_timeout": "10s"
//	}
package config
