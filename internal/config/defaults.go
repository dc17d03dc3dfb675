package config

// Default values
const (
	// Logging defaults; warn keeps the diagnostic stream clean unless the
	// user opts into tracing
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"
)

// EnvPrefix is the prefix for environment variable overrides
// (e.g. BUNMIGRATE_LOGGING_LEVEL).
const EnvPrefix = "BUNMIGRATE"
