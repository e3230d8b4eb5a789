// Package salecomp rolls raw sale transactions into market-value estimates.
//
// For each (grouping key, grade) with sales inside the trailing 180-day
// window it computes continuous-interpolation quartiles, the most recent
// sale, and an ordinal confidence grade stepped on observation count.
// Estimates stay in decimal currency units rounded to 2 places; this track
// deliberately does not share the snapshot track's integer-cents encoding.
package salecomp
