package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

// Environment variables read by FromEnv.
const (
	EnvDataDir         = "BOOKFACE_DATA_DIR"
	EnvLogLevel        = "BOOKFACE_LOG_LEVEL"
	EnvLogFormat       = "BOOKFACE_LOG_FORMAT"
	EnvLoanPeriodDays  = "BOOKFACE_LOAN_PERIOD_DAYS"
	EnvObservabilityOn = "BOOKFACE_OBSERVABILITY_ENABLED"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	defaultDataDir = "data"
	hoursPerDay    = 24

	// MaxLoanPeriodDays is the longest accepted loan period, about one hundred years.
	MaxLoanPeriodDays = 36500
)

var (
	// ErrInvalidLogLevel is returned for a log level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("log level must be one of debug, info, warn, error")

	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("log format must be text or json")

	// ErrInvalidLoanPeriod is returned when the loan period is not between 1 and MaxLoanPeriodDays days.
	ErrInvalidLoanPeriod = errors.New("loan period must be a positive number of days up to 36500")

	// ErrInvalidObservabilityFlag is returned when the observability switch is not a boolean.
	ErrInvalidObservabilityFlag = errors.New("observability switch must be a boolean")
)

// Config holds the runtime configuration of the library application.
type Config struct {
	DataDir              string
	LogLevel             slog.Level
	LogFormat            string
	LoanPeriod           time.Duration
	ObservabilityEnabled bool
}

// Default returns the configuration used when no environment variable is set.
func Default() Config {
	return Config{
		DataDir:    defaultDataDir,
		LogLevel:   slog.LevelInfo,
		LogFormat:  LogFormatText,
		LoanPeriod: core.DefaultLoanPeriod,
	}
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv reads the configuration from the process environment.
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, starting from Default.
// Blank values are treated as unset.
func FromLookup(lookup LookupFunc) (Config, error) {
	cfg := Default()

	if value, ok := nonBlank(lookup, EnvDataDir); ok {
		cfg.DataDir = value
	}

	if value, ok := nonBlank(lookup, EnvLogLevel); ok {
		level, err := ParseLogLevel(value)
		if err != nil {
			return Config{}, err
		}

		cfg.LogLevel = level
	}

	if value, ok := nonBlank(lookup, EnvLogFormat); ok {
		format, err := ParseLogFormat(value)
		if err != nil {
			return Config{}, err
		}

		cfg.LogFormat = format
	}

	if value, ok := nonBlank(lookup, EnvLoanPeriodDays); ok {
		period, err := ParseLoanPeriodDays(value)
		if err != nil {
			return Config{}, err
		}

		cfg.LoanPeriod = period
	}

	if value, ok := nonBlank(lookup, EnvObservabilityOn); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return Config{}, errors.Join(ErrInvalidObservabilityFlag, err)
		}

		cfg.ObservabilityEnabled = enabled
	}

	return cfg, nil
}

// ParseLogLevel parses debug, info, warn or error (case-insensitive).
func ParseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidLogLevel, raw)
	}
}

// ParseLogFormat parses text or json (case-insensitive).
func ParseLogFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format != LogFormatText && format != LogFormatJSON {
		return "", fmt.Errorf("%w: got %q", ErrInvalidLogFormat, raw)
	}

	return format, nil
}

// ParseLoanPeriodDays parses a number of days into a duration, see LoanPeriodFromDays.
func ParseLoanPeriodDays(raw string) (time.Duration, error) {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidLoanPeriod, raw)
	}

	return LoanPeriodFromDays(days)
}

// LoanPeriodFromDays converts days into a duration. It accepts 1 to MaxLoanPeriodDays days.
func LoanPeriodFromDays(days int) (time.Duration, error) {
	if days < 1 || days > MaxLoanPeriodDays {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLoanPeriod, days)
	}

	return time.Duration(days) * hoursPerDay * time.Hour, nil
}

func nonBlank(lookup LookupFunc, key string) (string, bool) {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}

	return value, true
}
