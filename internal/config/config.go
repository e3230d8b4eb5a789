package config

// Config is the root configuration shared by all pipeline jobs.
type Config struct {
	Database DBConfig   `yaml:"database"`
	Jobs     JobsConfig `yaml:"jobs"`
}

// DBConfig holds the PostgreSQL connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// JobsConfig holds settings common to the batch jobs.
type JobsConfig struct {
	// BatchSize caps queued statements per database round trip.
	BatchSize int `yaml:"batch_size"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}
