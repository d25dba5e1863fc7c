// Package core implements the validation engine for shipping-rate tables.
// This package has no I/O or HTTP dependencies and operates on one in-memory
// table per validation run.
package core

// Table is one in-memory rate table: an ordered column list and the data rows
// beneath it. A Table is owned exclusively by a single validation run; the
// engine has no internal synchronization.
type Table struct {
	Columns []string
	Rows    []*Row
}

// Row is a single data row. Index is the 1-based position of the row in the
// source sheet (first data row = 1) and stays attached to the row through
// every partition and merge the conflict detector performs.
type Row struct {
	Index int
	Cells []string
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumns reports whether every named column exists in the table,
// regardless of position.
func (t *Table) HasColumns(names ...string) bool {
	for _, name := range names {
		if t.ColumnIndex(name) < 0 {
			return false
		}
	}
	return true
}

// Cell returns the cell at the given column position, or "" when the row is
// shorter than the header.
func (r *Row) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

// SetCell overwrites the cell at the given column position. Positions beyond
// the row length are ignored.
func (r *Row) SetCell(col int, value string) {
	if col < 0 || col >= len(r.Cells) {
		return
	}
	r.Cells[col] = value
}

// columnValues collects all cell values of one column in row order.
func (t *Table) columnValues(col int) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row.Cell(col)
	}
	return values
}
