package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags handled here are passed to the flag set (see flagx.FilterArgs).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the REST API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	fs.IntVar(&cfg.PageLimit, "l", cfg.PageLimit, "tasks per page")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
