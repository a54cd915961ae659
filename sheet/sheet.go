// Package sheet reads and writes the xlsx workbooks that transaction rows
// come from and result records go to. It deals in plain cell strings; column
// meaning belongs to the source format configuration.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Read loads the active worksheet of an xlsx workbook into rows of cell
// strings. Trailing empty cells are trimmed by the reader, so callers must
// treat short rows as having empty cells.
func Read(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	defer f.Close()

	name := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q of %q: %w", name, path, err)
	}
	return rows, nil
}

// Write creates a new xlsx workbook at path with a single worksheet holding
// the given rows. An existing file at path is overwritten.
func Write(path, sheetName string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("cannot name sheet %q: %w", sheetName, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("cannot write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook %q: %w", path, err)
	}
	return nil
}
