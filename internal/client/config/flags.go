package config

import (
	"flag"
	"os"

	"github.com/ekaraman/skyfare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the flight-search API
//	-k string   RapidAPI key
//	-s string   path of the local key-value store
//
// The function filters os.Args to only include the flags it knows about, via
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the flight-search API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "RapidAPI key")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local key-value store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
