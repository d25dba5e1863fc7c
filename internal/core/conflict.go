package core

import (
	"sort"
	"strconv"
	"strings"
)

// Message prefixes for the two conflict passes. The weight prefix keeps its
// leading " + " even when no postal message precedes it; downstream tooling
// depends on the exact wording.
const (
	cepConflictPrefix  = "CEP: "
	pesoConflictPrefix = " + PESO: "
)

// interval is one inclusive range together with the record it came from.
type interval struct {
	rec    *Record
	lo, hi float64
}

// flagContainedUpperBounds runs the containment test over a set of intervals
// and appends one message per flagged row to the accumulator.
//
// The test is asymmetric on purpose: a row R with range (a, b) is flagged
// when its upper bound b falls strictly inside another row's range (c, d),
// i.e. b > c && d > b. It is not a full bidirectional interval-overlap test:
// identical ranges, and containment where only the lower bound sits inside
// the other range, are not reported. This mirrors the behavior the rest of
// the correction workflow is built around; see the known-limitation note in
// DESIGN.md before changing it.
func flagContainedUpperBounds(intervals []interval, prefix string, acc *RowErrors) {
	for _, r := range intervals {
		var matches []string
		for _, o := range intervals {
			if r.hi > o.lo && o.hi > r.hi {
				matches = append(matches, strconv.Itoa(o.rec.Row.Index))
			}
		}
		if len(matches) > 0 {
			acc.Append(r.rec.Row.Index, prefix+strings.Join(matches, ", "))
		}
	}
}

// cepRange is the exact-equality grouping key for the weight pass.
type cepRange struct {
	lo, hi int64
}

// detectConflicts flags every row whose declared range conflicts with another
// row's range, in two passes:
//
//  1. Postal pass, whole table: the containment test over (CepInicio, CepFim),
//     messages prefixed "CEP: ".
//  2. Weight pass, per postal group: rows are partitioned by exact
//     (CepInicio, CepFim) equality and the same test runs over
//     (PesoInicio, PesoFim) within each group, messages prefixed " + PESO: ".
//     Rows in different groups are never compared, even when their postal
//     ranges overlap.
//
// Groups are enumerated in first-appearance order so repeated runs behave
// identically. After the weight pass the per-group subsets are concatenated
// and re-sorted by original row index, restoring the input order; the
// returned slice replaces the caller's row ordering.
func detectConflicts(records []Record, acc *RowErrors) []*Row {
	// Pass 1: postal ranges across the whole table.
	intervals := make([]interval, len(records))
	for i := range records {
		intervals[i] = interval{
			rec: &records[i],
			lo:  float64(records[i].CepInicio),
			hi:  float64(records[i].CepFim),
		}
	}
	flagContainedUpperBounds(intervals, cepConflictPrefix, acc)

	// Group rows by exact postal range, keeping first-appearance order.
	var order []cepRange
	groups := make(map[cepRange][]*Record)
	for i := range records {
		key := cepRange{lo: records[i].CepInicio, hi: records[i].CepFim}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], &records[i])
	}

	// Pass 2: weight ranges within each group, then concatenate the subsets.
	merged := make([]*Row, 0, len(records))
	for _, key := range order {
		group := groups[key]
		weights := make([]interval, len(group))
		for i, rec := range group {
			weights[i] = interval{rec: rec, lo: rec.PesoInicio, hi: rec.PesoFim}
		}
		flagContainedUpperBounds(weights, pesoConflictPrefix, acc)

		for _, rec := range group {
			merged = append(merged, rec.Row)
		}
	}

	// Reassembly: restore original row order by index.
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Index < merged[j].Index
	})
	return merged
}
