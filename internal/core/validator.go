package core

// Report is the outcome of one validation pass over a table. The table's
// rows carry the coerced cell values; everything else is a signal for the
// presentation/export collaborator.
type Report struct {
	// Table is the validated table, cells rewritten by coercion, rows in
	// original order.
	Table *Table

	// Errors holds the accumulated conflict messages per row index.
	Errors *RowErrors

	// MalformedCells marks cells in numeric columns that do not parse as
	// numbers. Set whenever the value columns are present, even when
	// coercion failed.
	MalformedCells map[CellRef]bool

	// ErrorRows marks rows whose accumulated error text is non-empty.
	ErrorRows map[int]bool

	// MismatchedHeaders lists column positions whose names differ from the
	// canonical header.
	MismatchedHeaders []int

	// Complete reports whether the column count matched the canonical
	// layout. When false all value-level checks were skipped.
	Complete bool

	// ConflictsChecked reports whether the range conflict detector ran.
	// False when the schema was incomplete or weight coercion failed.
	ConflictsChecked bool
}

// Validator runs the full validation pipeline over one table. It assumes
// exclusive ownership of the table for the duration of the run: coercion
// rewrites cell values in place and the conflict detector partitions and
// re-merges the row slice.
type Validator struct {
	table *Table
}

// NewValidator wraps a table for validation.
func NewValidator(t *Table) *Validator {
	return &Validator{table: t}
}

// Validate runs the pipeline: schema check, weight coercion, type
// verification, conflict detection, numeric-format flagging, header check.
//
// Fatal conditions (*SchemaError, *TypeMismatchError) are returned as the
// error; the report is still populated with whatever degraded-mode checks
// could run (the header check needs no value-level data). A coercion failure
// is not fatal: the conflict detector is skipped and the report says so via
// ConflictsChecked.
func (v *Validator) Validate() (*Report, error) {
	t := v.table
	report := &Report{
		Table:          t,
		Errors:         NewRowErrors(),
		MalformedCells: make(map[CellRef]bool),
		ErrorRows:      make(map[int]bool),
	}

	report.Complete = len(t.Columns) == len(CanonicalColumns)
	if !report.Complete {
		report.MismatchedHeaders = checkHeaderNames(t.Columns)
		return report, &SchemaError{Expected: len(CanonicalColumns), Actual: len(t.Columns)}
	}

	if t.HasColumns(rangeValueColumns...) {
		if coerceWeights(t) {
			if err := verifyTypes(t); err != nil {
				report.MismatchedHeaders = checkHeaderNames(t.Columns)
				return report, err
			}

			records, err := buildRecords(t)
			if err != nil {
				return report, err
			}
			t.Rows = detectConflicts(records, report.Errors)
			report.ConflictsChecked = true
		}

		report.MalformedCells = flagMalformedNumbers(t)
	}

	for _, row := range t.Rows {
		if report.Errors.HasErrors(row.Index) {
			report.ErrorRows[row.Index] = true
		}
	}

	report.MismatchedHeaders = checkHeaderNames(t.Columns)
	return report, nil
}
