package salecomp

import (
	"testing"
	"time"

	"github.com/cardhouse/pricing-data/internal/model"
)

func TestWindow(t *testing.T) {
	asOf := model.Date{Year: 2024, Month: time.June, Day: 30}
	from, to := Window(asOf)

	if !to.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v, want midnight after asOf", to)
	}
	if got := to.Sub(from); got != WindowDays*24*time.Hour {
		t.Errorf("window length = %v, want %d days", got, WindowDays)
	}

	// A sale late on the computation date is inside the window.
	lateSale := time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)
	if !(lateSale.Equal(from) || lateSale.After(from)) || !lateSale.Before(to) {
		t.Errorf("sale at %v should be inside [%v, %v)", lateSale, from, to)
	}
}

func TestRollup(t *testing.T) {
	asOf := model.Date{Year: 2024, Month: time.June, Day: 30}
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	sales := []model.SaleComp{
		{ID: 1, GroupingKey: "neo-045", Grade: "PSA 10", Price: 10, SoldAt: base},
		{ID: 2, GroupingKey: "neo-045", Grade: "PSA 10", Price: 20, SoldAt: base.Add(time.Hour)},
		{ID: 3, GroupingKey: "neo-045", Grade: "raw", Price: 5, SoldAt: base},
	}

	ests := Rollup(asOf, sales)
	if len(ests) != 2 {
		t.Fatalf("len(ests) = %d, want 2", len(ests))
	}

	graded := ests[0]
	if graded.GroupingKey != "neo-045" || graded.Grade != "PSA 10" {
		t.Fatalf("first estimate = %s/%s, want neo-045/PSA 10", graded.GroupingKey, graded.Grade)
	}
	if graded.Median != 15 || graded.SaleCount != 2 {
		t.Errorf("graded = median %v count %d, want 15 and 2", graded.Median, graded.SaleCount)
	}
	if graded.Confidence != GradeFair {
		t.Errorf("graded.Confidence = %q, want %q", graded.Confidence, GradeFair)
	}
	if graded.LastSalePrice != 20 {
		t.Errorf("graded.LastSalePrice = %v, want 20", graded.LastSalePrice)
	}
	if graded.Date != asOf {
		t.Errorf("graded.Date = %v, want %v", graded.Date, asOf)
	}

	raw := ests[1]
	if raw.Grade != "raw" || raw.SaleCount != 1 {
		t.Fatalf("second estimate = %s count %d, want raw count 1", raw.Grade, raw.SaleCount)
	}
	if raw.Median != 5 || raw.P25 != 5 || raw.P75 != 5 {
		t.Errorf("single-sale quartiles = %v/%v/%v, want all 5", raw.P25, raw.Median, raw.P75)
	}
	if raw.Confidence != GradeLow {
		t.Errorf("raw.Confidence = %q, want %q", raw.Confidence, GradeLow)
	}
}

func TestRollupEmptyInput(t *testing.T) {
	if ests := Rollup(model.Today(), nil); len(ests) != 0 {
		t.Errorf("len(ests) = %d, want 0 (absence, not zero-filled rows)", len(ests))
	}
}
