package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferColumnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   ColumnType
	}{
		{name: "all integers", values: []string{"1000", "2000", "-5"}, want: TypeInteger},
		{name: "all floats", values: []string{"1.5", "2.25"}, want: TypeFloat},
		{name: "mixed integer and float", values: []string{"1", "2.5"}, want: TypeFloat},
		{name: "text wins over numbers", values: []string{"1", "abc"}, want: TypeText},
		{name: "decimal comma is text", values: []string{"1,5"}, want: TypeText},
		{name: "empty cells skipped", values: []string{"", "10", ""}, want: TypeInteger},
		{name: "all empty", values: []string{"", ""}, want: TypeText},
		{name: "no values", values: nil, want: TypeText},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inferColumnType(tt.values))
		})
	}
}

func TestColumnTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "object", TypeText.String())
	assert.Equal(t, "int64", TypeInteger.String())
	assert.Equal(t, "float64", TypeFloat.String())
}

func TestCheckHeaderNames(t *testing.T) {
	t.Parallel()

	t.Run("canonical header has no mismatches", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, checkHeaderNames(CanonicalColumns))
	})

	t.Run("renamed and extra columns flagged", func(t *testing.T) {
		t.Parallel()

		columns := append([]string(nil), CanonicalColumns...)
		columns[3] = "CepFinal"
		columns = append(columns, "Extra")

		assert.Equal(t, []int{3, 9}, checkHeaderNames(columns))
	})
}
