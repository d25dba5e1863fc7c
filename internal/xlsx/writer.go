package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fretecheck/fretecheck/internal/core"
)

// weightNumFmt shows three decimal places on the weight columns, matching
// what rate analysts expect to see after coercion.
const weightNumFmt = "0.000"

// styleSet holds the style ids used by one workbook render.
type styleSet struct {
	err       int // red fill: malformed cells and rows with errors
	errWeight int // red fill + 3-decimal format
	weight    int // 3-decimal format only
	headerBad int // amber fill: header names that differ from the canonical list
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	redFill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}}
	redFont := &excelize.Font{Color: "9C0006"}
	numFmt := weightNumFmt

	s := &styleSet{}
	var err error

	if s.err, err = f.NewStyle(&excelize.Style{Fill: redFill, Font: redFont}); err != nil {
		return nil, err
	}
	if s.errWeight, err = f.NewStyle(&excelize.Style{Fill: redFill, Font: redFont, CustomNumFmt: &numFmt}); err != nil {
		return nil, err
	}
	if s.weight, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}); err != nil {
		return nil, err
	}
	if s.headerBad, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFEB9C"}},
		Font: &excelize.Font{Color: "9C6500"},
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// Write renders the annotated table to w as an XLSX workbook: the original
// columns plus the error column, malformed numeric cells and rows with
// accumulated errors filled red, mismatched header names filled amber, and
// weight columns shown with three decimals. Numeric cells that parse are
// written as numbers so the sheet stays usable for spreadsheet math.
func Write(w io.Writer, report *core.Report) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetList()[0]
	styles, err := newStyleSet(f)
	if err != nil {
		return fmt.Errorf("create styles: %w", err)
	}

	table := report.Table
	weightCols := make(map[int]bool)
	for _, name := range []string{core.ColPesoInicio, core.ColPesoFim} {
		if col := table.ColumnIndex(name); col >= 0 {
			weightCols[col] = true
		}
	}

	// Header row: original columns plus the derived error column.
	header := append(append([]string(nil), table.Columns...), core.ErrorColumn)
	for j, name := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for _, pos := range report.MismatchedHeaders {
		cell, err := excelize.CoordinatesToCellName(pos+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.headerBad); err != nil {
			return err
		}
	}

	errCol := len(table.Columns)
	for i, row := range table.Rows {
		sheetRow := i + 2
		rowHasError := report.ErrorRows[row.Index]

		for j := range table.Columns {
			cell, err := excelize.CoordinatesToCellName(j+1, sheetRow)
			if err != nil {
				return err
			}
			if err := setCellValue(f, sheet, cell, row.Cell(j)); err != nil {
				return err
			}

			style := cellStyle(styles, rowHasError || report.MalformedCells[core.CellRef{Row: row.Index, Col: j}], weightCols[j])
			if style != 0 {
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return err
				}
			}
		}

		cell, err := excelize.CoordinatesToCellName(errCol+1, sheetRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, report.Errors.Get(row.Index)); err != nil {
			return err
		}
		if rowHasError {
			if err := f.SetCellStyle(sheet, cell, cell, styles.err); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// cellStyle picks the style for a data cell from its error and weight flags.
func cellStyle(styles *styleSet, hasError, isWeight bool) int {
	switch {
	case hasError && isWeight:
		return styles.errWeight
	case hasError:
		return styles.err
	case isWeight:
		return styles.weight
	default:
		return 0
	}
}

// setCellValue writes a cell as int64 or float64 when the text parses as a
// number, and as a plain string otherwise.
func setCellValue(f *excelize.File, sheet, cell, value string) error {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return f.SetCellValue(sheet, cell, n)
	}
	if fl, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f.SetCellValue(sheet, cell, fl)
	}
	return f.SetCellValue(sheet, cell, value)
}
