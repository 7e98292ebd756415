package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the current values untouched.
//
// Supported variables:
//
//	FORMHUB_ADDRESS         HTTP bind address (e.g., ":5000")
//	FORMHUB_DATABASE_DSN    PostgreSQL DSN
//	FORMHUB_SECRET_KEY      JWT HMAC secret
//	FORMHUB_TOKEN_VALIDITY  token lifetime in time.ParseDuration format
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("FORMHUB_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("FORMHUB_DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("FORMHUB_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("FORMHUB_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
