package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLookup(t *testing.T) {
	env := map[string]string{
		DocumentRootEnv: "/srv/www",
		LogLevelEnv:     "debug",
		LogFormatEnv:    "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := FromLookup(lookup)
	assert.Equal(t, "/srv/www", cfg.DocumentRoot)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

func TestLoad(t *testing.T) {
	t.Setenv(DocumentRootEnv, "/var/www/html")
	t.Setenv(LogLevelEnv, "")

	cfg := Load()
	assert.Equal(t, "/var/www/html", cfg.DocumentRoot)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}
