package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cardhouse/pricing-data/internal/model"
)

// SaleCompsBetween reads every sale with from <= sold_at < to.
func (s *Store) SaleCompsBetween(ctx context.Context, db DBTX, from, to time.Time) ([]model.SaleComp, error) {
	rows, err := db.Query(ctx, `
		SELECT id, grouping_key, grade, price, sold_at
		FROM sale_comps
		WHERE sold_at >= $1 AND sold_at < $2`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query sale comps: %w", err)
	}
	defer rows.Close()

	var out []model.SaleComp
	for rows.Next() {
		var sc model.SaleComp
		if err := rows.Scan(&sc.ID, &sc.GroupingKey, &sc.Grade, &sc.Price, &sc.SoldAt); err != nil {
			return nil, fmt.Errorf("scan sale comp: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read sale comps: %w", err)
	}
	return out, nil
}

const upsertEstimateSQL = `
	INSERT INTO value_estimates
		(estimate_date, grouping_key, grade, median_price, p25_price, p75_price,
		 last_sale_price, last_sale_at, sale_count, confidence)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (estimate_date, grouping_key, grade)
	DO UPDATE SET
		median_price    = EXCLUDED.median_price,
		p25_price       = EXCLUDED.p25_price,
		p75_price       = EXCLUDED.p75_price,
		last_sale_price = EXCLUDED.last_sale_price,
		last_sale_at    = EXCLUDED.last_sale_at,
		sale_count      = EXCLUDED.sale_count,
		confidence      = EXCLUDED.confidence
	RETURNING (xmax = 0) AS inserted
`

// UpsertEstimates writes rolled-up value estimates for one computation
// date, overwriting all derived fields unconditionally.
func (s *Store) UpsertEstimates(ctx context.Context, db DBTX, ests []model.ValueEstimate) (RunSummary, error) {
	var sum RunSummary
	for start := 0; start < len(ests); start += s.batchSize {
		end := min(start+s.batchSize, len(ests))

		batch := &pgx.Batch{}
		for _, e := range ests[start:end] {
			batch.Queue(upsertEstimateSQL,
				e.Date.Time(), e.GroupingKey, e.Grade, e.Median, e.P25, e.P75,
				e.LastSalePrice, e.LastSaleAt, e.SaleCount, e.Confidence)
		}

		chunk, err := execUpserts(ctx, db, batch)
		if err != nil {
			return RunSummary{}, fmt.Errorf("upsert value estimates: %w", err)
		}
		sum.Add(chunk)
	}
	return sum, nil
}
