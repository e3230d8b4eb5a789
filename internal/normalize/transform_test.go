package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cardhouse/pricing-data/internal/model"
	"github.com/cardhouse/pricing-data/internal/vendor"
)

var testSpec = vendor.Spec{
	Name: "scryfall",
	Fields: []vendor.Field{
		{Name: "usd", Currency: "USD", PriceType: "market"},
		{Name: "usd_foil", Currency: "USD", PriceType: "foil"},
		{Name: "tix", Currency: "USD", PriceType: "tix"},
	},
}

func strp(s string) *string { return &s }

func testDate() model.Date { return model.Date{Year: 2024, Month: time.May, Day: 1} }

func TestTransform(t *testing.T) {
	runID := uuid.New()
	rows := []vendor.SourceRow{
		{
			ItemID: 42,
			Values: []*string{strp("12.34"), strp("30.00"), nil},
			Raw:    []byte(`{"usd":"12.34","usd_foil":"30.00"}`),
		},
	}

	snaps := Transform(testSpec, rows, testDate(), runID)
	if len(snaps) != 2 {
		t.Fatalf("len(snaps) = %d, want 2", len(snaps))
	}

	market := snaps[0]
	if market.ItemID != 42 || market.Source != "scryfall" || market.Currency != "USD" {
		t.Errorf("unexpected identity: %+v", market)
	}
	if market.PriceType != "market" || market.ValueCents != 1234 {
		t.Errorf("market snapshot = (%s, %d), want (market, 1234)", market.PriceType, market.ValueCents)
	}
	if snaps[1].PriceType != "foil" || snaps[1].ValueCents != 3000 {
		t.Errorf("foil snapshot = (%s, %d), want (foil, 3000)", snaps[1].PriceType, snaps[1].ValueCents)
	}

	var payload struct {
		RunID uuid.UUID       `json:"run_id"`
		Row   json.RawMessage `json:"row"`
	}
	if err := json.Unmarshal(market.Raw, &payload); err != nil {
		t.Fatalf("raw payload not JSON: %v", err)
	}
	if payload.RunID != runID {
		t.Errorf("raw run_id = %v, want %v", payload.RunID, runID)
	}
}

func TestTransformAbsentFields(t *testing.T) {
	tests := []struct {
		name  string
		value *string
	}{
		{name: "nil", value: nil},
		{name: "empty string", value: strp("")},
		{name: "non numeric", value: strp("N/A")},
		{name: "zero", value: strp("0.00")},
		{name: "negative", value: strp("-1.50")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []vendor.SourceRow{{ItemID: 1, Values: []*string{tt.value, nil, nil}, Raw: []byte(`{}`)}}
			if snaps := Transform(testSpec, rows, testDate(), uuid.New()); len(snaps) != 0 {
				t.Errorf("len(snaps) = %d, want 0", len(snaps))
			}
		})
	}
}

func TestTransformDedupesWithinBatch(t *testing.T) {
	// Two source rows mapped to the same internal item: the larger value
	// wins regardless of row order.
	a := vendor.SourceRow{ItemID: 7, Values: []*string{strp("5.00"), nil, nil}, Raw: []byte(`{}`)}
	b := vendor.SourceRow{ItemID: 7, Values: []*string{strp("6.00"), nil, nil}, Raw: []byte(`{}`)}

	for name, rows := range map[string][]vendor.SourceRow{
		"ascending":  {a, b},
		"descending": {b, a},
	} {
		t.Run(name, func(t *testing.T) {
			snaps := Transform(testSpec, rows, testDate(), uuid.New())
			if len(snaps) != 1 {
				t.Fatalf("len(snaps) = %d, want 1", len(snaps))
			}
			if snaps[0].ValueCents != 600 {
				t.Errorf("ValueCents = %d, want 600", snaps[0].ValueCents)
			}
		})
	}
}

func TestTransformShortValueSlice(t *testing.T) {
	// A row with fewer values than spec fields must not panic.
	rows := []vendor.SourceRow{{ItemID: 1, Values: []*string{strp("2.00")}, Raw: []byte(`{}`)}}
	snaps := Transform(testSpec, rows, testDate(), uuid.New())
	if len(snaps) != 1 {
		t.Fatalf("len(snaps) = %d, want 1", len(snaps))
	}
}
