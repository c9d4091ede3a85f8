package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":4000", c.Addr)
	assert.Equal(t, "file:gazette.db?_fk=1", c.DatabaseDSN)
	assert.Equal(t, "development", c.Env)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("GAZETTE_ADDR", ":9000")
	t.Setenv("GAZETTE_DATABASE_DSN", ":memory:")

	var c Config
	c.LoadDefaults()
	c.ParseEnv()

	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, ":memory:", c.DatabaseDSN)
	assert.Equal(t, "development", c.Env, "untouched fields keep their defaults")
}
