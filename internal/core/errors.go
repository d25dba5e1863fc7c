package core

import "fmt"

// SchemaError reports a table whose column count does not match the canonical
// 9-column layout. It is fatal for all value-level checks; only the header
// name check still runs afterwards.
type SchemaError struct {
	Expected int
	Actual   int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing or extra columns: expected %d columns, got %d", e.Expected, e.Actual)
}

// TypeMismatchError reports an enforced column whose verified type differs
// from the canonical schema. It aborts the whole pipeline for the table.
type TypeMismatchError struct {
	Column   string
	Expected ColumnType
	Actual   ColumnType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %q is not in the right data type: expected %s, got %s",
		e.Column, e.Expected, e.Actual)
}
