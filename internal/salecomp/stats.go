package salecomp

import (
	"math"
	"sort"
	"time"

	"github.com/cardhouse/pricing-data/internal/model"
)

// Confidence grades, ordered best to worst. Thresholds are fixed policy.
const (
	GradeHigh = "high" // >= 10 sales
	GradeGood = "good" // >= 5 sales
	GradeFair = "fair" // >= 2 sales
	GradeLow  = "low"  // 1 sale
)

// Grade maps an observation count to its confidence grade. Boundary counts
// land on the higher grade.
func Grade(count int) string {
	switch {
	case count >= 10:
		return GradeHigh
	case count >= 5:
		return GradeGood
	case count >= 2:
		return GradeFair
	default:
		return GradeLow
	}
}

// Stats holds the order statistics of one sale group.
type Stats struct {
	Median     float64
	P25        float64
	P75        float64
	Count      int
	LastPrice  float64
	LastSoldAt time.Time
}

// Compute derives trailing-window statistics from a non-empty sale group.
// The most recent sale wins on timestamp; timestamp ties fall back to the
// larger sale id so the result is deterministic.
func Compute(sales []model.SaleComp) Stats {
	prices := make([]float64, len(sales))
	last := sales[0]
	for i, s := range sales {
		prices[i] = s.Price
		if s.SoldAt.After(last.SoldAt) || (s.SoldAt.Equal(last.SoldAt) && s.ID > last.ID) {
			last = s
		}
	}
	sort.Float64s(prices)

	return Stats{
		Median:     round2(percentile(prices, 0.50)),
		P25:        round2(percentile(prices, 0.25)),
		P75:        round2(percentile(prices, 0.75)),
		Count:      len(sales),
		LastPrice:  round2(last.Price),
		LastSoldAt: last.SoldAt,
	}
}

// percentile interpolates continuously over a sorted slice: the rank is
// p*(n-1), fractional ranks blend the two neighboring values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
