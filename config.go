package casetrail

import "os"

// Config configures a casetrail session.
type Config struct {
	// SourceID stamps committed change entries with their origin.
	// Defaults to hostname if not set.
	SourceID string

	// Debug enables verbose logging of loads, navigation, commits, and
	// exports.
	Debug bool

	// DebugLogPath is the path to write debug logs.
	// Defaults to stderr if empty.
	DebugLogPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	hostname, _ := os.Hostname()
	return Config{SourceID: hostname}
}

// ConfigFromEnv reads configuration from environment variables.
//
//	CASETRAIL_SOURCE_ID → SourceID
//	CASETRAIL_DEBUG     → Debug (any non-empty value enables)
//	CASETRAIL_DEBUG_LOG → DebugLogPath
func ConfigFromEnv() Config {
	return Config{
		SourceID:     os.Getenv("CASETRAIL_SOURCE_ID"),
		Debug:        os.Getenv("CASETRAIL_DEBUG") != "",
		DebugLogPath: os.Getenv("CASETRAIL_DEBUG_LOG"),
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.DebugLogPath != "" && !c.Debug {
		return &ValidationError{Field: "DebugLogPath", Message: "set without Debug enabled"}
	}
	return nil
}

// WithDefaults fills in default values for unset fields.
func (c Config) WithDefaults() Config {
	if c.SourceID == "" {
		c.SourceID = DefaultConfig().SourceID
	}
	return c
}
