package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rateRow is a compact literal for building test tables: the four range
// bounds plus defaults for the remaining canonical columns.
type rateRow struct {
	cepLo, cepHi   string
	pesoLo, pesoHi string
}

func buildTable(t *testing.T, rows []rateRow) *Table {
	t.Helper()

	table := &Table{Columns: append([]string(nil), CanonicalColumns...)}
	for i, r := range rows {
		table.Rows = append(table.Rows, &Row{
			Index: i + 1,
			Cells: []string{
				"Regra", "Descricao",
				r.cepLo, r.cepHi,
				r.pesoLo, r.pesoHi,
				"100", "5", "Sim",
			},
		})
	}
	return table
}

func validate(t *testing.T, rows []rateRow) *Report {
	t.Helper()

	report, err := NewValidator(buildTable(t, rows)).Validate()
	require.NoError(t, err)
	require.True(t, report.ConflictsChecked)
	return report
}

func TestDetectConflicts_PostalAsymmetry(t *testing.T) {
	t.Parallel()

	// Row 1's upper bound (2000) falls strictly inside row 2's range
	// (1500, 2500); row 2's upper bound (2500) does not fall inside row 1's
	// range. Only row 1 is flagged.
	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"1500", "2500", "20", "30"},
	})

	assert.Equal(t, "CEP: 2", report.Errors.Get(1))
	assert.Empty(t, report.Errors.Get(2))
	assert.True(t, report.ErrorRows[1])
	assert.False(t, report.ErrorRows[2])
}

func TestDetectConflicts_IdenticalPostalRangesNotFlagged(t *testing.T) {
	t.Parallel()

	// Identical ranges slip through the upper-bound containment test:
	// b > c holds but d > b does not. Known limitation, kept intentionally.
	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"1000", "2000", "20", "30"},
	})

	assert.Empty(t, report.Errors.Get(1))
	assert.Empty(t, report.Errors.Get(2))
}

func TestDetectConflicts_WeightOverlapWithinGroup(t *testing.T) {
	t.Parallel()

	// Same postal range, weight ranges (0,10) and (5,20): 10 falls inside
	// (5,20), so row 1 is flagged; 20 falls inside nothing.
	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"1000", "2000", "5", "20"},
	})

	assert.Equal(t, " + PESO: 2", report.Errors.Get(1))
	assert.Empty(t, report.Errors.Get(2))
}

func TestDetectConflicts_NonOverlappingWeights(t *testing.T) {
	t.Parallel()

	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"1000", "2000", "10.01", "20"},
	})

	assert.Zero(t, report.Errors.Len())
}

func TestDetectConflicts_WeightPassIsolatedPerGroup(t *testing.T) {
	t.Parallel()

	// Overlapping weight ranges, but different postal ranges: the weight
	// pass never compares rows across postal groups, even though the postal
	// ranges themselves overlap.
	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"1500", "2500", "5", "20"},
	})

	assert.Equal(t, "CEP: 2", report.Errors.Get(1))
	assert.Empty(t, report.Errors.Get(2))
}

func TestDetectConflicts_PostalAndWeightMessagesAccumulate(t *testing.T) {
	t.Parallel()

	// Rows 1 and 2 share a postal range whose upper bound sits inside row
	// 3's range, and their weight ranges also conflict. Row 1 collects both
	// messages in pass order.
	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"1000", "2000", "5", "20"},
		{"1500", "2500", "0", "10"},
	})

	assert.Equal(t, "CEP: 3 + PESO: 2", report.Errors.Get(1))
	assert.Equal(t, "CEP: 3", report.Errors.Get(2))
	assert.Empty(t, report.Errors.Get(3))
}

func TestDetectConflicts_MultipleMatchesJoined(t *testing.T) {
	t.Parallel()

	// Row 1's upper bound falls inside the ranges of rows 2 and 3: one
	// message with comma-joined indices, not one message per match.
	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"1500", "2500", "20", "30"},
		{"1900", "2600", "40", "50"},
	})

	assert.Equal(t, "CEP: 2, 3", report.Errors.Get(1))
}

func TestDetectConflicts_ReassemblyRestoresRowOrder(t *testing.T) {
	t.Parallel()

	// Rows of two postal groups interleaved. The weight pass partitions the
	// table by group and re-merges; the final index sequence must equal the
	// input sequence exactly.
	table := buildTable(t, []rateRow{
		{"1000", "2000", "0", "10"},
		{"3000", "4000", "0", "10"},
		{"1000", "2000", "20", "30"},
		{"3000", "4000", "20", "30"},
		{"1000", "2000", "40", "50"},
	})

	report, err := NewValidator(table).Validate()
	require.NoError(t, err)

	indices := make([]int, len(report.Table.Rows))
	for i, row := range report.Table.Rows {
		indices[i] = row.Index
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, indices)
}

func TestDetectConflicts_SingleRowNeverFlagged(t *testing.T) {
	t.Parallel()

	report := validate(t, []rateRow{
		{"1000", "2000", "0", "10"},
	})

	assert.Zero(t, report.Errors.Len())
}
