package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   REST bind address (e.g., ":5000")
//	-g string   gRPC health bind address (empty disables)
//	-d string   store DSN (postgres://, mongodb://, memory)
//	-n string   MongoDB database name
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-l string   log level
//	-o string   allowed CORS origin
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-r string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so -c/-config can live alongside them.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-n", "-s", "-t", "-l", "-o", "-u", "-p", "-b", "-r", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run REST server")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name (mongodb)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.AllowedOrigin, "o", config.AllowedOrigin, "allowed CORS origin")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
