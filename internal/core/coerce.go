package core

import (
	"fmt"
	"strconv"
	"strings"
)

// coerceWeights normalizes the decimal separator of the two weight columns,
// replacing commas with periods so the cells parse as floating point. A
// column is rewritten only when every one of its cells parses after
// normalization; a column with any unparseable cell is left untouched and
// coercion is reported failed for the table. Partial coercion is not
// acceptable because the conflict detector needs numeric comparisons over
// the whole column.
func coerceWeights(t *Table) bool {
	ok := true
	for _, name := range weightColumns {
		col := t.ColumnIndex(name)
		if col < 0 {
			ok = false
			continue
		}

		normalized := make([]string, len(t.Rows))
		colOK := true
		for i, row := range t.Rows {
			v := strings.TrimSpace(strings.ReplaceAll(row.Cell(col), ",", "."))
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				colOK = false
				break
			}
			normalized[i] = v
		}
		if !colOK {
			ok = false
			continue
		}
		for i, row := range t.Rows {
			row.SetCell(col, normalized[i])
		}
	}
	return ok
}

// verifyTypes checks the table's column types against the canonical schema.
// The check is positional but only positions 2-5 are enforced. The weight
// columns are float by construction once coercion succeeded; every other
// enforced position is classified from its cell values.
//
// Returns a *TypeMismatchError naming the offending column on the first
// mismatch.
func verifyTypes(t *Table) error {
	for pos := enforcedFrom; pos <= enforcedTo && pos < len(t.Columns); pos++ {
		name := t.Columns[pos]

		var actual ColumnType
		if name == ColPesoInicio || name == ColPesoFim {
			actual = TypeFloat
		} else {
			actual = inferColumnType(t.columnValues(pos))
		}

		if actual != expectedTypes[pos] {
			return &TypeMismatchError{
				Column:   name,
				Expected: expectedTypes[pos],
				Actual:   actual,
			}
		}
	}
	return nil
}

// Record is one rate rule with its range bounds decoded from the table cells.
// The conflict detector operates on Records so it never re-parses cell text.
type Record struct {
	Row        *Row
	CepInicio  int64
	CepFim     int64
	PesoInicio float64
	PesoFim    float64
}

// buildRecords decodes the postal and weight bounds of every row. It runs
// after coercion and type verification, so parse failures indicate a table
// the verifier should have rejected.
func buildRecords(t *Table) ([]Record, error) {
	cepLo := t.ColumnIndex(ColCepInicio)
	cepHi := t.ColumnIndex(ColCepFim)
	pesoLo := t.ColumnIndex(ColPesoInicio)
	pesoHi := t.ColumnIndex(ColPesoFim)

	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := Record{Row: row}
		var err error

		if rec.CepInicio, err = strconv.ParseInt(strings.TrimSpace(row.Cell(cepLo)), 10, 64); err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", row.Index, ColCepInicio, err)
		}
		if rec.CepFim, err = strconv.ParseInt(strings.TrimSpace(row.Cell(cepHi)), 10, 64); err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", row.Index, ColCepFim, err)
		}
		if rec.PesoInicio, err = strconv.ParseFloat(strings.TrimSpace(row.Cell(pesoLo)), 64); err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", row.Index, ColPesoInicio, err)
		}
		if rec.PesoFim, err = strconv.ParseFloat(strings.TrimSpace(row.Cell(pesoHi)), 64); err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", row.Index, ColPesoFim, err)
		}

		records = append(records, rec)
	}
	return records, nil
}
