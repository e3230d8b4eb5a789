// Package normalize converts vendor price rows into canonical snapshots.
//
// One generic transform serves every vendor: the vendor.Spec supplies the
// field-to-(currency, price type) mapping, this package supplies the price
// parsing and identity rules. Unparseable or non-positive fields degrade to
// absent and never abort a batch.
package normalize
