package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey seals the cached session token at rest.
	HashKey string
	// LogFile is the client log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// MaxRetries bounds retries of idempotent reads.
	MaxRetries int
	// RateLimit caps outbound requests per second; zero means unlimited.
	RateLimit float64
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background timer settings.
type ClientWorkers struct {
	// ReverifyInterval is the passive session re-verification period.
	ReverifyInterval time.Duration
	// ProbeInterval is the reachability probe period.
	ProbeInterval time.Duration
	// SyncInterval is the background pull period.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background timer settings.
	Workers ClientWorkers
	// Args are the positional command-line arguments (the command to run).
	Args []string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are os.Args[1:].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg, rest)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig, args []string) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			MaxRetries:     cfg.Adapter.MaxRetries,
			RateLimit:      cfg.Adapter.RateLimit,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ReverifyInterval: cfg.Workers.ReverifyInterval,
			ProbeInterval:    cfg.Workers.ProbeInterval,
			SyncInterval:     cfg.Workers.SyncInterval,
		},
		Args: args,
	}
}
