// Package config loads and validates pipeline configuration.
//
// Configuration is a YAML file with ${VAR} environment expansion, shared by
// all batch jobs. Loading is three-staged: Load parses, applyDefaults fills
// optional fields, Validate rejects incomplete or out-of-range values.
package config
