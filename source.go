package transactions

import (
	"fmt"
	"strings"

	"github.com/adnanhakim/process-transactions-script/date"
)

// RowsFromSheet applies a source format's column mapping to raw sheet cells
// and returns the ledger rows in input order. Header rows are skipped and
// rows with an absent or zero quantity are discarded before they reach the
// booking core.
//
// A malformed data row (unparseable quantity, date or price, a side value
// outside buy/sell, or a missing instrument name) aborts the whole run:
// silently producing a record with an invalid field is not an option.
func RowsFromSheet(cells [][]string, format Format) ([]Row, error) {
	if format.FirstRow > len(cells) {
		return nil, nil
	}

	var rows []Row
	for i, line := range cells[format.FirstRow:] {
		// 1-based sheet coordinates for error messages
		rowNum := format.FirstRow + i + 1

		qtyCell := cell(line, format.QtyCol)
		if qtyCell == "" || qtyCell == "0" {
			continue
		}
		quantity, err := ParseQuantity(qtyCell)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q: %w", rowNum, qtyCell, err)
		}
		if quantity.IsZero() {
			continue
		}

		name := strings.TrimSpace(cell(line, format.NameCol))
		if name == "" {
			return nil, fmt.Errorf("row %d: missing instrument name", rowNum)
		}

		on, err := date.ParseLayout(format.DateLayout, cell(line, format.DateCol))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		price, err := ParsePrice(cell(line, format.PriceCol))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", rowNum, cell(line, format.PriceCol), err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("row %d: negative price %s", rowNum, price)
		}

		if format.Sided() {
			side, err := ParseSide(cell(line, format.SideCol))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}
			rows = append(rows, NewSidedRow(name, side, quantity, on, price))
		} else {
			rows = append(rows, NewRow(name, quantity, on, price))
		}
	}
	return rows, nil
}

// cell returns the i-th cell of a sheet line, or "" when the line is too
// short. Sheet readers trim trailing empty cells, so short lines are normal.
func cell(line []string, i int) string {
	if i < 0 || i >= len(line) {
		return ""
	}
	return line[i]
}
