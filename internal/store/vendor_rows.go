package store

import (
	"context"
	"fmt"

	"github.com/cardhouse/pricing-data/internal/vendor"
)

// VendorRows reads one vendor's projected price rows. The catalog query
// inner-joins item_mappings, so unmapped source rows never appear here.
func (s *Store) VendorRows(ctx context.Context, db DBTX, spec vendor.Spec) ([]vendor.SourceRow, error) {
	rows, err := db.Query(ctx, spec.Query)
	if err != nil {
		return nil, fmt.Errorf("query vendor %s: %w", spec.Name, err)
	}
	defer rows.Close()

	var out []vendor.SourceRow
	for rows.Next() {
		row := vendor.SourceRow{Values: make([]*string, len(spec.Fields))}

		dest := make([]any, 0, len(spec.Fields)+2)
		dest = append(dest, &row.ItemID)
		for i := range row.Values {
			dest = append(dest, &row.Values[i])
		}
		dest = append(dest, &row.Raw)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan vendor %s row: %w", spec.Name, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read vendor %s rows: %w", spec.Name, err)
	}
	return out, nil
}
