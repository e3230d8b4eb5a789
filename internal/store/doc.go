// Package store implements the pipeline's reads and writes against PostgreSQL.
//
// Writes are set-oriented: rows are queued on a pgx.Batch in chunks and sent
// inside the caller's transaction. Every write is an upsert keyed by the
// row's identity (INSERT ... ON CONFLICT ... DO UPDATE), so reruns are safe
// and at-least-once retries converge. The RETURNING (xmax = 0) flag splits
// affected rows into fresh inserts and conflict updates for run summaries.
package store
