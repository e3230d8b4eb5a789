package resolve

import (
	"sort"
	"time"

	"github.com/cardhouse/pricing-data/internal/model"
)

// partition is one (item, currency, date) ranking group. Dates partition
// strictly: a snapshot never competes outside its own day.
type partition struct {
	ItemID   int64
	Currency string
	Date     model.Date
}

// Resolve computes one canonical daily price per (item, currency, date)
// present in snaps. Output is ordered by item, date for stable writes.
func Resolve(snaps []model.Snapshot, now time.Time) []model.DailyPrice {
	groups := make(map[partition][]model.Snapshot)
	for _, s := range snaps {
		p := partition{ItemID: s.ItemID, Currency: s.Currency, Date: s.Date}
		groups[p] = append(groups[p], s)
	}

	out := make([]model.DailyPrice, 0, len(groups))
	for p, group := range groups {
		w := PickWinner(group)
		out = append(out, model.DailyPrice{
			ItemID:     p.ItemID,
			Date:       p.Date,
			Currency:   p.Currency,
			ValueCents: w.ValueCents,
			Confidence: BaselineConfidence,
			SourcesUsed: []model.Contribution{{
				Source:     w.Source,
				PriceType:  w.PriceType,
				Condition:  w.Condition,
				ValueCents: w.ValueCents,
			}},
			Method:    Method,
			UpdatedAt: now,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID < out[j].ItemID
		}
		if out[i].Date != out[j].Date {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Currency < out[j].Currency
	})
	return out
}
