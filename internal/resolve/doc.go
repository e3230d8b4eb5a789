// Package resolve reduces same-day snapshots to one canonical daily price.
//
// Selection is pure policy: a fixed source priority order, a fixed
// price-type order to break ties within a source, and the larger value as
// the final tie-break. Given the same snapshot set the winner is always the
// same snapshot, regardless of input order. Ranking never compares
// snapshots across dates.
package resolve
