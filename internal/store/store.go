package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx satisfied by both a pool and a transaction.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Store provides scoped reads and transactional upserts.
type Store struct {
	pool      *pgxpool.Pool
	batchSize int
}

// New creates a Store. batchSize caps queued statements per round trip.
func New(pool *pgxpool.Pool, batchSize int) *Store {
	return &Store{pool: pool, batchSize: batchSize}
}

// Pool exposes the underlying pool for reads outside a transaction.
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

// InTx runs fn inside a single transaction; any error rolls back the whole
// batch so a failed run leaves no partially-applied scope.
func (s *Store) InTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, s.pool, fn)
}

// RunSummary counts rows a run touched, split by write outcome.
type RunSummary struct {
	Inserted int64
	Updated  int64
}

// Total returns all rows touched.
func (r RunSummary) Total() int64 {
	return r.Inserted + r.Updated
}

// Add accumulates another summary into r.
func (r *RunSummary) Add(other RunSummary) {
	r.Inserted += other.Inserted
	r.Updated += other.Updated
}

// execUpserts sends queued upsert statements and tallies inserts vs updates
// from each statement's RETURNING (xmax = 0) flag.
func execUpserts(ctx context.Context, db DBTX, batch *pgx.Batch) (RunSummary, error) {
	var sum RunSummary

	results := db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		var inserted bool
		if err := results.QueryRow().Scan(&inserted); err != nil {
			results.Close()
			return RunSummary{}, fmt.Errorf("upsert %d of %d: %w", i+1, batch.Len(), err)
		}
		if inserted {
			sum.Inserted++
		} else {
			sum.Updated++
		}
	}
	if err := results.Close(); err != nil {
		return RunSummary{}, fmt.Errorf("close batch: %w", err)
	}
	return sum, nil
}
