// Package flagx lets several flag sets share one command line: the config
// file lookup and the server or client flag set each pick out their own flags
// and ignore the rest.
package flagx

import (
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ConfigFlags name the config file on the command line.
var ConfigFlags = []string{"-c", "-config"}

// FilterArgs keeps only the allowed flags from args, in order. Both
// "-a value" and "-a=value" are recognised; a token starting with '-' is
// never taken as a value, so "-c -d memory" keeps "-c" alone.
func FilterArgs(args []string, allowed []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		name, _, inline := strings.Cut(args[i], "=")
		if !strings.HasPrefix(name, "-") || !slices.Contains(allowed, name) {
			continue
		}
		out = append(out, args[i])

		if !inline && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
	}

	return out
}

// ConfigPath returns the config file named in args by -c or -config, or ""
// when there is none. If both are given the last one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFlags))

	return path
}

// ConfigFileFlag is ConfigPath over the process arguments.
func ConfigFileFlag() string {
	return ConfigPath(os.Args[1:])
}

// IsYAML reports whether a config file should be decoded as YAML. Any other
// extension is read as JSON with comments.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
