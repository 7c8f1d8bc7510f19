package aggregator

import "sort"

// Table is a two-level event counter keyed by row and then column.
// Adding is commutative, so the final counts do not depend on the order
// in which events arrive.
type Table struct {
	counts map[string]map[string]int64
	total  int64
}

// New creates an empty Table.
func New() *Table {
	return &Table{counts: make(map[string]map[string]int64)}
}

// Add records one event for the given row and column.
func (t *Table) Add(row, col string) {
	cols, ok := t.counts[row]
	if !ok {
		cols = make(map[string]int64)
		t.counts[row] = cols
	}
	cols[col]++
	t.total++
}

// Merge adds every count of o into t.
func (t *Table) Merge(o *Table) {
	for row, cols := range o.counts {
		dst, ok := t.counts[row]
		if !ok {
			dst = make(map[string]int64, len(cols))
			t.counts[row] = dst
		}
		for col, n := range cols {
			dst[col] += n
		}
	}
	t.total += o.total
}

// Count returns the number of events recorded for row and col.
func (t *Table) Count(row, col string) int64 {
	return t.counts[row][col]
}

// Rows returns every row key seen, sorted ascending.
func (t *Table) Rows() []string {
	rows := make([]string, 0, len(t.counts))
	for row := range t.counts {
		rows = append(rows, row)
	}
	sort.Strings(rows)
	return rows
}

// ColumnTotal sums a column across all rows.
func (t *Table) ColumnTotal(col string) int64 {
	var sum int64
	for _, cols := range t.counts {
		sum += cols[col]
	}
	return sum
}

// Total returns the number of events added.
func (t *Table) Total() int64 {
	return t.total
}
