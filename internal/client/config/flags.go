package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   address and port of the backend server
//	-r int      request timeout in seconds
//
// os.Args is filtered with flagx.FilterArgs first so that -c/-config does not
// trip the flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	timeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
