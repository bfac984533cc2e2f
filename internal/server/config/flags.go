package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-d string   PostgreSQL DSN, empty for the in-memory store
//	-s string   base64 JWT HMAC secret
//	-t int      access token validity, minutes
//	-l string   log level
//
// Only the flags above are picked out of os.Args, so -c/-config and flags of
// other components do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "base64 encoded secret key")
	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
		}
	})
}
