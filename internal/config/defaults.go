package config

import "time"

// defaultConfig returns the built-in fallback values used when no other
// configuration source supplies a field. The token signing key and database
// DSN deliberately have no defaults; validation rejects a config without them.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "orderdesk",
			TokenDuration: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
