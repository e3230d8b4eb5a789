package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cardhouse/pricing-data/internal/model"
	"github.com/cardhouse/pricing-data/internal/resolve"
)

// upsertSnapshotSQL overwrites value and audit payload for an existing
// identity key and inserts otherwise. Condition is stored as an empty
// string rather than NULL so the unique index covers the full identity key.
const upsertSnapshotSQL = `
	INSERT INTO price_snapshots
		(item_id, source, snapshot_date, currency, price_type, condition, value_cents, raw)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (item_id, source, snapshot_date, currency, price_type, condition)
	DO UPDATE SET value_cents = EXCLUDED.value_cents, raw = EXCLUDED.raw
	RETURNING (xmax = 0) AS inserted
`

// UpsertSnapshots writes a normalized batch. Reruns over identical source
// data leave existing rows byte-identical and insert nothing new.
func (s *Store) UpsertSnapshots(ctx context.Context, db DBTX, snaps []model.Snapshot) (RunSummary, error) {
	var sum RunSummary
	for start := 0; start < len(snaps); start += s.batchSize {
		end := min(start+s.batchSize, len(snaps))

		batch := &pgx.Batch{}
		for _, snap := range snaps[start:end] {
			batch.Queue(upsertSnapshotSQL,
				snap.ItemID, snap.Source, snap.Date.Time(), snap.Currency,
				snap.PriceType, snap.Condition, snap.ValueCents, snap.Raw)
		}

		chunk, err := execUpserts(ctx, db, batch)
		if err != nil {
			return RunSummary{}, fmt.Errorf("upsert snapshots: %w", err)
		}
		sum.Add(chunk)
	}
	return sum, nil
}

// scopeQuery builds the scoped snapshot select. Single-day scopes pin the
// date; range scopes add only the bounds that are set.
func scopeQuery(sc resolve.Scope, currency string) (string, []any) {
	query := `
		SELECT item_id, source, snapshot_date, currency, price_type, condition, value_cents
		FROM price_snapshots
		WHERE currency = $1`
	args := []any{currency}

	switch {
	case !sc.Date.IsZero():
		query += fmt.Sprintf(" AND snapshot_date = $%d", len(args)+1)
		args = append(args, sc.Date.Time())
	default:
		if !sc.From.IsZero() {
			query += fmt.Sprintf(" AND snapshot_date >= $%d", len(args)+1)
			args = append(args, sc.From.Time())
		}
		if !sc.To.IsZero() {
			query += fmt.Sprintf(" AND snapshot_date <= $%d", len(args)+1)
			args = append(args, sc.To.Time())
		}
	}

	return query, args
}

// SnapshotsInScope reads every snapshot matching the resolver's date scope
// and currency. Raw payloads are not loaded; ranking does not need them.
func (s *Store) SnapshotsInScope(ctx context.Context, db DBTX, sc resolve.Scope, currency string) ([]model.Snapshot, error) {
	query, args := scopeQuery(sc, currency)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshots in scope %s: %w", sc, err)
	}
	defer rows.Close()

	var out []model.Snapshot
	for rows.Next() {
		var snap model.Snapshot
		var date time.Time
		if err := rows.Scan(&snap.ItemID, &snap.Source, &date, &snap.Currency,
			&snap.PriceType, &snap.Condition, &snap.ValueCents); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.Date = model.DateOf(date)
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read snapshots: %w", err)
	}
	return out, nil
}
