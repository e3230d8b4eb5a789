package normalize

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/cardhouse/pricing-data/internal/model"
	"github.com/cardhouse/pricing-data/internal/vendor"
)

// rawPayload is the audit document stored with every snapshot.
type rawPayload struct {
	RunID uuid.UUID       `json:"run_id"`
	Row   json.RawMessage `json:"row"`
}

// Transform maps projected vendor rows to canonical snapshots for one date.
//
// Each present, parseable, positive field yields one snapshot. The result
// contains every identity key at most once: when duplicate source rows map
// to the same key, the larger value is kept, so the output is independent
// of input row order.
func Transform(spec vendor.Spec, rows []vendor.SourceRow, date model.Date, runID uuid.UUID) []model.Snapshot {
	byKey := make(map[model.SnapshotKey]model.Snapshot)
	order := make([]model.SnapshotKey, 0, len(rows))

	for _, row := range rows {
		// Row is already valid JSON from the vendor projection.
		raw, _ := json.Marshal(rawPayload{RunID: runID, Row: row.Raw})

		for i, field := range spec.Fields {
			if i >= len(row.Values) || row.Values[i] == nil {
				continue
			}
			cents, ok := ParsePrice(*row.Values[i])
			if !ok {
				continue
			}

			snap := model.Snapshot{
				ItemID:     row.ItemID,
				Source:     spec.Name,
				Date:       date,
				Currency:   field.Currency,
				PriceType:  field.PriceType,
				Condition:  field.Condition,
				ValueCents: cents,
				Raw:        raw,
			}

			key := snap.Key()
			if prev, seen := byKey[key]; seen {
				if snap.ValueCents > prev.ValueCents {
					byKey[key] = snap
				}
				continue
			}
			byKey[key] = snap
			order = append(order, key)
		}
	}

	out := make([]model.Snapshot, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}
