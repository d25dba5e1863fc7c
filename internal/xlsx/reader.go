// Package xlsx implements the spreadsheet boundary of the validation
// pipeline: loading an uploaded workbook into the in-memory table the engine
// operates on, and rendering the annotated result back to a workbook with
// visual highlighting.
package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fretecheck/fretecheck/internal/core"
)

// ErrNoSheets is returned for workbooks without a single worksheet.
var ErrNoSheets = errors.New("no sheets found in workbook")

// ErrEmptySheet is returned when the first sheet has no header row.
var ErrEmptySheet = errors.New("first sheet is empty")

// Read parses the first sheet of an XLSX document into a table. The first
// row becomes the column list; every following row becomes a data row padded
// to the header width, indexed from 1 in sheet order.
func Read(r io.Reader) (*core.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	table := &core.Table{
		Columns: append([]string(nil), rows[0]...),
	}

	for i, cells := range rows[1:] {
		row := &core.Row{
			Index: i + 1,
			Cells: make([]string, len(table.Columns)),
		}
		for j := range table.Columns {
			if j < len(cells) {
				row.Cells[j] = cells[j]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
