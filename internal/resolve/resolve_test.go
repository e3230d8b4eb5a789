package resolve

import (
	"testing"
	"time"

	"github.com/cardhouse/pricing-data/internal/model"
)

func TestResolveVendorScenario(t *testing.T) {
	// Lower-priority vendor reports $12.34, higher-priority vendor $10.00
	// for the same item/day/currency: the resolver keeps $10.00.
	snaps := []model.Snapshot{
		snap("cardmarket", "market", 1234),
		snap("scryfall", "market", 1000),
	}

	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	prices := Resolve(snaps, now)
	if len(prices) != 1 {
		t.Fatalf("len(prices) = %d, want 1", len(prices))
	}

	p := prices[0]
	if p.ValueCents != 1000 {
		t.Errorf("ValueCents = %d, want 1000", p.ValueCents)
	}
	if p.Method != Method {
		t.Errorf("Method = %q, want %q", p.Method, Method)
	}
	if p.Confidence != BaselineConfidence {
		t.Errorf("Confidence = %v, want %v", p.Confidence, BaselineConfidence)
	}
	if len(p.SourcesUsed) != 1 {
		t.Fatalf("len(SourcesUsed) = %d, want 1", len(p.SourcesUsed))
	}
	c := p.SourcesUsed[0]
	if c.Source != "scryfall" || c.PriceType != "market" || c.ValueCents != 1000 {
		t.Errorf("contribution = %+v, want scryfall/market/1000", c)
	}
	if !p.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", p.UpdatedAt, now)
	}
}

func TestResolvePartitionsByDate(t *testing.T) {
	// A cheap snapshot on day 1 must not influence day 2, and vice versa.
	d1 := snap("scryfall", "market", 100)
	d2 := snap("scryfall", "market", 9900)
	d2.Date = day(2)

	prices := Resolve([]model.Snapshot{d2, d1}, time.Now())
	if len(prices) != 2 {
		t.Fatalf("len(prices) = %d, want 2", len(prices))
	}
	if prices[0].Date != day(1) || prices[0].ValueCents != 100 {
		t.Errorf("day 1 = %s/%d, want %s/100", prices[0].Date, prices[0].ValueCents, day(1))
	}
	if prices[1].Date != day(2) || prices[1].ValueCents != 9900 {
		t.Errorf("day 2 = %s/%d, want %s/9900", prices[1].Date, prices[1].ValueCents, day(2))
	}
}

func TestResolvePartitionsByCurrency(t *testing.T) {
	usd := snap("scryfall", "market", 1000)
	eur := snap("scryfall", "market", 800)
	eur.Currency = "EUR"

	prices := Resolve([]model.Snapshot{usd, eur}, time.Now())
	if len(prices) != 2 {
		t.Fatalf("len(prices) = %d, want 2", len(prices))
	}
}

func TestResolveEmptyInput(t *testing.T) {
	if prices := Resolve(nil, time.Now()); len(prices) != 0 {
		t.Errorf("len(prices) = %d, want 0", len(prices))
	}
}

func TestResolveStableOutputOrder(t *testing.T) {
	mk := func(item int64, d int) model.Snapshot {
		s := snap("scryfall", "market", 100)
		s.ItemID = item
		s.Date = day(d)
		return s
	}
	a := []model.Snapshot{mk(2, 1), mk(1, 2), mk(1, 1)}
	b := []model.Snapshot{mk(1, 1), mk(2, 1), mk(1, 2)}

	pa := Resolve(a, time.Time{})
	pb := Resolve(b, time.Time{})
	if len(pa) != 3 || len(pb) != 3 {
		t.Fatalf("lengths = %d, %d, want 3, 3", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].ItemID != pb[i].ItemID || pa[i].Date != pb[i].Date {
			t.Errorf("row %d differs across input orders: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
