package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses configuration flags from args and returns the
// resulting config together with the remaining positional arguments.
//
// Flags:
//
//	-a server base URL (e.g. http://localhost:8080)
//	-d local SQLite DSN
//	-c/-config json file path with configs
//	-hash-key session sealing key
//	-log-file client log file path
//	-request-timeout request timeout (e.g. "10s")
//	-max-retries retries for idempotent reads
//	-rate-limit outbound requests per second
//	-reverify-interval passive session re-verification period (e.g. "24h")
//	-probe-interval reachability probe period (e.g. "30s")
//	-sync-interval background pull period (e.g. "5m")
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("book-keeper", flag.ContinueOnError)

	var (
		serverAddress    string
		databaseDSN      string
		jsonConfigPath   string
		hashKey          string
		logFile          string
		requestTimeout   time.Duration
		maxRetries       int
		rateLimit        float64
		reverifyInterval time.Duration
		probeInterval    time.Duration
		syncInterval     time.Duration
	)

	fs.StringVar(&serverAddress, "a", "", "Server base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Session sealing key")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Retries for idempotent reads")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second (0 = unlimited)")
	fs.DurationVar(&reverifyInterval, "reverify-interval", 0, "Session re-verification period (e.g., 24h)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Reachability probe period (e.g., 30s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background pull period (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
			MaxRetries:     maxRetries,
			RateLimit:      rateLimit,
		},
		Workers: Workers{
			ReverifyInterval: reverifyInterval,
			ProbeInterval:    probeInterval,
			SyncInterval:     syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
