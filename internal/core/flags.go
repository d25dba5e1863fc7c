package core

import (
	"strconv"
	"strings"
)

// CellRef identifies one cell by the row's original index and the column
// position in the table.
type CellRef struct {
	Row int
	Col int
}

// flagMalformedNumbers marks every cell in the numeric columns that does not
// parse as a number after decimal-comma normalization. It is independent of
// the conflict detector and never fails: the flags are a presentation signal,
// not an error.
func flagMalformedNumbers(t *Table) map[CellRef]bool {
	flags := make(map[CellRef]bool)
	for _, name := range rangeValueColumns {
		col := t.ColumnIndex(name)
		if col < 0 {
			continue
		}
		for _, row := range t.Rows {
			v := strings.TrimSpace(strings.ReplaceAll(row.Cell(col), ",", "."))
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				flags[CellRef{Row: row.Index, Col: col}] = true
			}
		}
	}
	return flags
}

// checkHeaderNames compares the actual column names against the canonical
// list positionally and returns the positions whose names mismatch. Extra
// columns beyond the canonical width are always mismatches. Needs no
// value-level data, so it runs even when the schema check failed.
func checkHeaderNames(columns []string) []int {
	var mismatched []int
	for i, name := range columns {
		if i >= len(CanonicalColumns) || name != CanonicalColumns[i] {
			mismatched = append(mismatched, i)
		}
	}
	return mismatched
}
