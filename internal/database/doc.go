// Package database provides connection pool management for PostgreSQL.
//
// All three pipeline jobs share one database: vendor source tables and the
// item identity mapping are read, the canonical snapshot, daily-price, and
// value-estimate tables are written. Every job wraps its writes in a single
// transaction so a failed run leaves no partially-applied batch.
package database
