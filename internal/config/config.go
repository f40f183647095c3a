// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging flags, environment variables, an optional JSON file
// and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session sealing key
	// and the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the HTTP adapter talking to the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the intervals of the background timers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the secret the cached session token is sealed with before
	// it is written to the local database.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogFile is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path, optionally with query
	// parameters (e.g. "books.db?_journal=WAL&_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the outbound HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the book server
	// (e.g. "https://books.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries is how many times idempotent reads (profile, health,
	// book listing) are retried on transport errors. Zero disables retries.
	// Env: ADAPTER_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// RateLimit caps outbound requests per second. Zero means unlimited.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Workers holds the intervals of the client's background timers.
type Workers struct {
	// ReverifyInterval is the delay between passive session
	// re-verifications.
	// Env: WORKERS_REVERIFY_INTERVAL
	ReverifyInterval time.Duration `env:"REVERIFY_INTERVAL"`

	// ProbeInterval is the delay between reachability probes while the
	// user is authenticated.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// SyncInterval is how often the background pull is attempted.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Defaults applied to fields that no other source set.
const (
	DefaultHTTPAddress      = "http://localhost:8080"
	DefaultDSN              = "books.db"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultMaxRetries       = 2
	DefaultReverifyInterval = 24 * time.Hour
	DefaultProbeInterval    = 30 * time.Second
	DefaultSyncInterval     = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxRetries:     DefaultMaxRetries,
		},
		Workers: Workers{
			ReverifyInterval: DefaultReverifyInterval,
			ProbeInterval:    DefaultProbeInterval,
			SyncInterval:     DefaultSyncInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. args are the command-line arguments without the program
// name; the positional arguments left after flag parsing are returned as
// the second value.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.rest, err
}
