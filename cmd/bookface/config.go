package main

import (
	"flag"
	"log"

	"github.com/AntonStoeckl/bookface-go/library/shared/shell/config"
)

// parseFlags parses command line flags on top of the environment configuration.
func parseFlags() config.Config {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid environment configuration: %v", err)
	}

	var (
		dataDir        = flag.String("data-dir", cfg.DataDir, "Directory holding books.json and persons.json")
		logLevel       = flag.String("log-level", cfg.LogLevel.String(), "Log level: debug, info, warn, error")
		logFormat      = flag.String("log-format", cfg.LogFormat, "Log format: text or json")
		loanPeriodDays = flag.Int("loan-period-days", int(cfg.LoanPeriod.Hours()/24), "Days until a loan without return date is due")
		observability  = flag.Bool("observability-enabled", cfg.ObservabilityEnabled, "Record OpenTelemetry metrics and spans in-process and log commands as OpenTelemetry log records")
	)

	flag.Parse()

	if cfg.LogLevel, err = config.ParseLogLevel(*logLevel); err != nil {
		log.Fatalf("Invalid -log-level '%s': %v", *logLevel, err)
	}

	if cfg.LogFormat, err = config.ParseLogFormat(*logFormat); err != nil {
		log.Fatalf("Invalid -log-format '%s': %v", *logFormat, err)
	}

	if cfg.LoanPeriod, err = config.LoanPeriodFromDays(*loanPeriodDays); err != nil {
		log.Fatalf("Invalid -loan-period-days '%d': %v", *loanPeriodDays, err)
	}

	cfg.DataDir = *dataDir
	cfg.ObservabilityEnabled = *observability

	return cfg
}
