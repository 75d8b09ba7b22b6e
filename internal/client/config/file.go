package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophtasks/internal/flagx"
	"github.com/dmitrijs2005/gophtasks/internal/timex"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file decoding. Absent keys leave
// the current value untouched.
type FileConfig struct {
	ServerURL      *string         `json:"server_url" yaml:"server_url"`
	DBPath         *string         `json:"db_path" yaml:"db_path"`
	PageLimit      *int            `json:"page_limit" yaml:"page_limit"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// parseFile overlays cfg with values from the file named by -c/-config,
// YAML for .yaml/.yml and JSON with comments otherwise.
// Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if flagx.IsYAML(path) {
		err = yaml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(jsonc.ToJSON(data), &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.PageLimit != nil {
		cfg.PageLimit = *fc.PageLimit
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}
