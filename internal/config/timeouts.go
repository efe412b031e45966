package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timing values.
// These values can be customized via environment variables.
type Timeouts struct {
	InstancePollInterval time.Duration // Interval between instance readiness polls
	InstancePollAttempts int           // Bounded number of readiness polls before giving up
	RetryMaxAttempts     int           // Total attempts for transient provider errors, first try included
	RetryInitialDelay    time.Duration // Initial delay between retries
}

// LoadTimeouts loads timing configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - NF_INSTANCE_POLL_INTERVAL (default: 10s)
//   - NF_INSTANCE_POLL_ATTEMPTS (default: 30)
//   - NF_RETRY_MAX_ATTEMPTS (default: 3)
//   - NF_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		InstancePollInterval: parseDuration("NF_INSTANCE_POLL_INTERVAL", 10*time.Second),
		InstancePollAttempts: parseInt("NF_INSTANCE_POLL_ATTEMPTS", 30),
		RetryMaxAttempts:     parseInt("NF_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay:    parseDuration("NF_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
