package salecomp

import (
	"sort"
	"time"

	"github.com/cardhouse/pricing-data/internal/model"
)

// WindowDays is the trailing window length for sale-comp estimates.
const WindowDays = 180

// Window returns the [from, to) sale-timestamp bounds for a computation
// date: the trailing 180 days ending at (and including all of) asOf.
func Window(asOf model.Date) (from, to time.Time) {
	to = asOf.AddDays(1).Time()
	from = asOf.AddDays(1 - WindowDays).Time()
	return from, to
}

// group identifies one estimate partition.
type group struct {
	Key   string
	Grade string
}

// Rollup computes one value estimate per (grouping key, grade) from the
// window's sales. Groups with no sales yield nothing; a single sale yields
// an estimate with all quartiles equal to it. Output is ordered by
// grouping key, grade for stable writes.
func Rollup(asOf model.Date, sales []model.SaleComp) []model.ValueEstimate {
	groups := make(map[group][]model.SaleComp)
	for _, s := range sales {
		g := group{Key: s.GroupingKey, Grade: s.Grade}
		groups[g] = append(groups[g], s)
	}

	out := make([]model.ValueEstimate, 0, len(groups))
	for g, gs := range groups {
		st := Compute(gs)
		out = append(out, model.ValueEstimate{
			Date:          asOf,
			GroupingKey:   g.Key,
			Grade:         g.Grade,
			Median:        st.Median,
			P25:           st.P25,
			P75:           st.P75,
			LastSalePrice: st.LastPrice,
			LastSaleAt:    st.LastSoldAt,
			SaleCount:     st.Count,
			Confidence:    Grade(st.Count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].GroupingKey != out[j].GroupingKey {
			return out[i].GroupingKey < out[j].GroupingKey
		}
		return out[i].Grade < out[j].Grade
	})
	return out
}
