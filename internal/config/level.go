package config

import "log/slog"

// ParseLevel maps the configured log level to slog. Validate has already
// rejected anything outside the known set; unknowns fall back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
