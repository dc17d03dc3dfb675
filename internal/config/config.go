package config

import "fmt"

// Settings represents the runtime settings shared by both filters. The
// filters deliberately read no config files: settings come from defaults,
// BUNMIGRATE_* environment variables, and CLI flag bindings only, so an
// invocation stays a pure stdin→stdout pipe.
type Settings struct {
	Verbose bool            `mapstructure:"verbose"`
	Logging LoggingSettings `mapstructure:"logging"`
}

// LoggingSettings contains log output settings
type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the settings and normalizes invalid values back to the
// defaults.
func (s *Settings) Validate() error {
	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	case "":
		s.Logging.Level = DefaultLogLevel
	default:
		return fmt.Errorf("invalid log level %q", s.Logging.Level)
	}

	switch s.Logging.Format {
	case "pretty", "json":
	case "":
		s.Logging.Format = DefaultLogFormat
	default:
		return fmt.Errorf("invalid log format %q", s.Logging.Format)
	}

	return nil
}
