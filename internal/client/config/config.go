// Package config holds runtime settings for the dashboard CLI.
package config

import (
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	// BaseURL is the root of the socialpulse API, without a trailing slash.
	BaseURL string
	// SessionDir is where the persisted session lives.
	SessionDir string
}

func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.SessionDir = filepath.Join(home, ".socialpulse")
}

// LoadConfig applies defaults, then environment variables, then
// command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.parseEnv()
	cfg.parseFlags(os.Args[1:])
	return cfg
}

func (c *Config) parseEnv() {
	if v := os.Getenv("SOCIALPULSE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SOCIALPULSE_SESSION_DIR"); v != "" {
		c.SessionDir = v
	}
}

func (c *Config) parseFlags(args []string) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.StringVar(&c.BaseURL, "a", c.BaseURL, "base URL of the socialpulse server")
	fs.StringVar(&c.SessionDir, "s", c.SessionDir, "directory for persisted session state")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
