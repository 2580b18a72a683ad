package config

import "os"

const (
	// DocumentRootEnv is set by HTTP servers (CGI and FastCGI) to the root
	// directory they serve.
	DocumentRootEnv = "DOCUMENT_ROOT"
	LogLevelEnv     = "FSPATH_LOG_LEVEL"
	LogFormatEnv    = "FSPATH_LOG_FORMAT"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds settings taken from the environment.
type Config struct {
	DocumentRoot string
	LogLevel     string
	LogFormat    string
}

// Load reads the configuration from the process environment.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, which has the signature
// of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) Config {
	return Config{
		DocumentRoot: get(lookup, DocumentRootEnv, ""),
		LogLevel:     get(lookup, LogLevelEnv, DefaultLogLevel),
		LogFormat:    get(lookup, LogFormatEnv, DefaultLogFormat),
	}
}

func get(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}
