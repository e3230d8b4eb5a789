package config

// Default values for optional configuration fields.
const (
	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 10
	DefaultMinConns  = 2
	DefaultBatchSize = 500
	DefaultLogLevel  = "info"
)

func (c *Config) applyDefaults() {
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	if c.Jobs.BatchSize == 0 {
		c.Jobs.BatchSize = DefaultBatchSize
	}
	if c.Jobs.LogLevel == "" {
		c.Jobs.LogLevel = DefaultLogLevel
	}
}
