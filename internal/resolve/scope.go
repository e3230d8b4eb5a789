package resolve

import (
	"errors"
	"fmt"

	"github.com/cardhouse/pricing-data/internal/model"
)

// Scope is the date selection for one resolver run: either a single
// explicit day, or a range over every date present in the snapshot table,
// optionally narrowed by inclusive bounds.
type Scope struct {
	Date model.Date // Single-day mode when non-zero
	From model.Date // Inclusive lower bound, optional
	To   model.Date // Inclusive upper bound, optional
	All  bool       // Range mode without Date
}

// NewScope builds a Scope from raw flag values. An empty dateStr with no
// range flags defaults to today (UTC). Mixing -date with range flags is a
// configuration error, as is an inverted range.
func NewScope(dateStr, fromStr, toStr string, all bool) (Scope, error) {
	rangeMode := all || fromStr != "" || toStr != ""

	if dateStr != "" && rangeMode {
		return Scope{}, errors.New("-date cannot be combined with -from, -to, or -all-dates")
	}

	if !rangeMode {
		if dateStr == "" {
			return Scope{Date: model.Today()}, nil
		}
		d, err := model.ParseDate(dateStr)
		if err != nil {
			return Scope{}, err
		}
		return Scope{Date: d}, nil
	}

	var sc Scope
	sc.All = true
	var err error
	if fromStr != "" {
		if sc.From, err = model.ParseDate(fromStr); err != nil {
			return Scope{}, err
		}
	}
	if toStr != "" {
		if sc.To, err = model.ParseDate(toStr); err != nil {
			return Scope{}, err
		}
	}
	if !sc.From.IsZero() && !sc.To.IsZero() && sc.To.Before(sc.From) {
		return Scope{}, fmt.Errorf("-from %s is after -to %s", sc.From, sc.To)
	}
	return sc, nil
}

// String renders the scope for run logs.
func (sc Scope) String() string {
	if !sc.Date.IsZero() {
		return sc.Date.String()
	}
	from, to := "*", "*"
	if !sc.From.IsZero() {
		from = sc.From.String()
	}
	if !sc.To.IsZero() {
		to = sc.To.String()
	}
	return from + ".." + to
}
