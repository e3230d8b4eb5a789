package model

import "time"

// DefaultCurrency is the canonical currency resolved when no filter is given.
const DefaultCurrency = "USD"

// -----------------------------------------------------------------------------
// Snapshot Track (integer minor units)
// -----------------------------------------------------------------------------

// Snapshot is a single vendor price observation normalized to the canonical
// shape: one row per (item, source, date, currency, price type, condition).
type Snapshot struct {
	ItemID     int64  // Internal item identifier
	Source     string // Vendor name (e.g., "scryfall")
	Date       Date   // Observation date
	Currency   string // ISO 4217 code ("USD", "EUR")
	PriceType  string // Variant tag: market, trend, foil, etched, tix, loose, graded, low, high
	Condition  string // Optional qualifier ("PSA 10", "cib"); "" when unqualified
	ValueCents int64  // Price in minor units, always > 0
	Raw        []byte // Projected source row as JSON, kept for audit
}

// SnapshotKey is the identity of a snapshot row.
type SnapshotKey struct {
	ItemID    int64
	Source    string
	Date      Date
	Currency  string
	PriceType string
	Condition string
}

// Key returns the identity key of s.
func (s Snapshot) Key() SnapshotKey {
	return SnapshotKey{
		ItemID:    s.ItemID,
		Source:    s.Source,
		Date:      s.Date,
		Currency:  s.Currency,
		PriceType: s.PriceType,
		Condition: s.Condition,
	}
}

// Contribution describes one snapshot that fed a resolved daily price.
// Serialized into the daily price's sources_used audit column.
type Contribution struct {
	Source     string `json:"source"`
	PriceType  string `json:"price_type"`
	Condition  string `json:"condition,omitempty"`
	ValueCents int64  `json:"value_cents"`
}

// DailyPrice is the single canonical price for an (item, date, currency).
type DailyPrice struct {
	ItemID      int64
	Date        Date
	Currency    string
	ValueCents  int64
	Confidence  float64
	SourcesUsed []Contribution
	Method      string // Selection algorithm tag (e.g., "source_priority")
	UpdatedAt   time.Time
}

// -----------------------------------------------------------------------------
// Sale-Comp Track (decimal units)
// -----------------------------------------------------------------------------

// SaleComp is one observed completed sale used as market-value evidence.
type SaleComp struct {
	ID          int64     // Stable secondary key, breaks timestamp ties
	GroupingKey string    // Item-grouping key (e.g., set + card number)
	Grade       string    // Grading tier ("PSA 10", "raw", ...)
	Price       float64   // Sale price in decimal currency units
	SoldAt      time.Time // Sale timestamp
}

// ValueEstimate is the statistically derived market value for one
// (date, grouping key, grade).
type ValueEstimate struct {
	Date          Date
	GroupingKey   string
	Grade         string
	Median        float64 // 50th percentile of window sales, 2-decimal rounded
	P25           float64 // Lower quartile
	P75           float64 // Upper quartile
	LastSalePrice float64
	LastSaleAt    time.Time
	SaleCount     int
	Confidence    string // Ordinal grade derived from SaleCount
}
