// Package config handles runtime configuration: defaults first, then
// environment variables, then command-line flags.
package config

import (
	"flag"
	"os"
)

// Config holds the runtime settings for the gazette server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseDSN: sqlite DSN (mattn/go-sqlite3).
//   - Env: environment name, only used for logging.
type Config struct {
	Addr        string
	DatabaseDSN string
	Env         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":4000"
	c.DatabaseDSN = "file:gazette.db?_fk=1"
	c.Env = "development"
}

// ParseEnv overlays values from GAZETTE_* environment variables.
func (c *Config) ParseEnv() {
	if v, ok := os.LookupEnv("GAZETTE_ADDR"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("GAZETTE_DATABASE_DSN"); ok {
		c.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("GAZETTE_ENV"); ok {
		c.Env = v
	}
}

func (c *Config) parseFlags() {
	flag.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	flag.StringVar(&c.DatabaseDSN, "dsn", c.DatabaseDSN, "sqlite data source name")
	flag.StringVar(&c.Env, "env", c.Env, "environment (development|production)")
	flag.Parse()
}

// Load builds a Config by applying defaults, then the environment, then
// command-line flags.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.ParseEnv()
	cfg.parseFlags()
	return cfg
}
