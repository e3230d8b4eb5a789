package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cardhouse/pricing-data/internal/model"
)

const upsertDailyPriceSQL = `
	INSERT INTO daily_prices
		(item_id, price_date, currency, value_cents, confidence, sources_used, method, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (item_id, price_date, currency)
	DO UPDATE SET
		value_cents  = EXCLUDED.value_cents,
		confidence   = EXCLUDED.confidence,
		sources_used = EXCLUDED.sources_used,
		method       = EXCLUDED.method,
		updated_at   = EXCLUDED.updated_at
	RETURNING (xmax = 0) AS inserted
`

// UpsertDailyPrices writes resolved prices, overwriting any prior
// resolution for the same (item, date, currency) unconditionally.
func (s *Store) UpsertDailyPrices(ctx context.Context, db DBTX, prices []model.DailyPrice) (RunSummary, error) {
	var sum RunSummary
	for start := 0; start < len(prices); start += s.batchSize {
		end := min(start+s.batchSize, len(prices))

		batch := &pgx.Batch{}
		for _, p := range prices[start:end] {
			sources, err := json.Marshal(p.SourcesUsed)
			if err != nil {
				return RunSummary{}, fmt.Errorf("marshal sources_used for item %d: %w", p.ItemID, err)
			}
			batch.Queue(upsertDailyPriceSQL,
				p.ItemID, p.Date.Time(), p.Currency, p.ValueCents,
				p.Confidence, sources, p.Method, p.UpdatedAt)
		}

		chunk, err := execUpserts(ctx, db, batch)
		if err != nil {
			return RunSummary{}, fmt.Errorf("upsert daily prices: %w", err)
		}
		sum.Add(chunk)
	}
	return sum, nil
}
