// Package model defines shared data types used across the pricing pipeline.
//
// Conventions:
//   - Snapshot and daily-price values: integer minor currency units (cents)
//   - Sale-comp estimates: decimal currency units rounded to 2 places
//   - Dates: UTC calendar days (model.Date)
//   - Run IDs: uuid.UUID, one per batch invocation
package model
