package resolve

import "github.com/cardhouse/pricing-data/internal/model"

// Method tags the selection algorithm on every resolved row, so future
// aggregation methods can coexist in the same table.
const Method = "source_priority"

// BaselineConfidence is the fixed confidence score for priority-selected
// prices. This path does not model source reliability beyond rank.
const BaselineConfidence = 0.8

// unknownRank sorts sources and price types with no configured priority
// after every configured one.
const unknownRank = 1 << 20

// sourceRank is the trust order over vendors, most trusted first.
// Policy data: extend the table, never the algorithm.
var sourceRank = map[string]int{
	"scryfall":      0,
	"cardmarket":    1,
	"pricecharting": 2,
}

// priceTypeRank breaks ties within one source tier: plain market prices
// outrank variant finishes, which outrank bounds.
var priceTypeRank = map[string]int{
	"market": 0,
	"trend":  1,
	"foil":   2,
	"etched": 3,
	"tix":    4,
	"loose":  5,
	"graded": 6,
	"low":    7,
	"high":   8,
}

// SourceRank returns the priority rank of a source, unknown sources last.
func SourceRank(source string) int {
	if r, ok := sourceRank[source]; ok {
		return r
	}
	return unknownRank
}

// PriceTypeRank returns the priority rank of a price type, unknown last.
func PriceTypeRank(priceType string) int {
	if r, ok := priceTypeRank[priceType]; ok {
		return r
	}
	return unknownRank
}

// PickWinner selects the canonical snapshot from one (item, currency, date)
// partition. The smallest (source rank, price-type rank) wins; on equal
// ranks the larger value wins; a residual tie falls back to lexical order
// so the choice is total and input-order independent.
func PickWinner(snaps []model.Snapshot) model.Snapshot {
	winner := snaps[0]
	for _, s := range snaps[1:] {
		if beats(s, winner) {
			winner = s
		}
	}
	return winner
}

func beats(a, b model.Snapshot) bool {
	if ar, br := SourceRank(a.Source), SourceRank(b.Source); ar != br {
		return ar < br
	}
	if ar, br := PriceTypeRank(a.PriceType), PriceTypeRank(b.PriceType); ar != br {
		return ar < br
	}
	if a.ValueCents != b.ValueCents {
		return a.ValueCents > b.ValueCents
	}
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	if a.PriceType != b.PriceType {
		return a.PriceType < b.PriceType
	}
	return a.Condition < b.Condition
}
