package dataview

import (
	"fmt"
	"time"

	"gridview/internal/dataset"
	"gridview/internal/errors"
)

// displayTarget is the rough number of labels offered to range sliders; the
// true index is downsampled with stride max(1, N/displayTarget).
const displayTarget = 100

// Selection is a resolved set of row positions in the source table, in
// original index order.
type Selection struct {
	Rows []int
}

// Len returns the number of selected rows
func (s Selection) Len() int {
	return len(s.Rows)
}

// monthNames holds the locale-independent English month names in calendar order.
var monthNames = func() []string {
	names := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		names[m-1] = m.String()
	}
	return names
}()

// MonthNames returns the twelve selectable month bucket names in calendar order
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames)
	return out
}

func validMonth(name string) bool {
	for _, m := range monthNames {
		if m == name {
			return true
		}
	}
	return false
}

// DisplayLabels returns the downsampled label sequence offered for range
// selection. The final true-index label is always included even when it falls
// off the stride. Fails when fewer than two distinct index points exist.
func DisplayLabels(t *dataset.Table) ([]string, error) {
	ix := t.Index()
	n := ix.Len()
	if distinctLabels(ix) < 2 {
		return nil, errors.NewSelectionError("fewer than two distinct index points")
	}

	stride := n / displayTarget
	if stride < 1 {
		stride = 1
	}

	labels := make([]string, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		labels = append(labels, ix.Label(i))
	}
	if last := ix.Label(n - 1); labels[len(labels)-1] != last {
		labels = append(labels, last)
	}
	return labels, nil
}

func distinctLabels(ix dataset.Index) int {
	seen := make(map[string]struct{}, ix.Len())
	for i := 0; i < ix.Len(); i++ {
		seen[ix.Label(i)] = struct{}{}
	}
	return len(seen)
}

// SelectRange maps a pair of display labels back to true index positions by
// exact match and resolves the contiguous row span between them. A reversed
// pair is reordered, never rejected.
func SelectRange(t *dataset.Table, start, end string) (Selection, error) {
	ix := t.Index()
	if distinctLabels(ix) < 2 {
		return Selection{}, errors.NewSelectionError("fewer than two distinct index points")
	}

	startPos, ok := findLabel(ix, start)
	if !ok {
		return Selection{}, errors.NewSelectionError(fmt.Sprintf("label %q not in index", start))
	}
	endPos, ok := findLabel(ix, end)
	if !ok {
		return Selection{}, errors.NewSelectionError(fmt.Sprintf("label %q not in index", end))
	}

	if startPos > endPos {
		startPos, endPos = endPos, startPos
	}

	rows := make([]int, 0, endPos-startPos+1)
	for i := startPos; i <= endPos; i++ {
		rows = append(rows, i)
	}
	return Selection{Rows: rows}, nil
}

func findLabel(ix dataset.Index, label string) (int, bool) {
	for i := 0; i < ix.Len(); i++ {
		if ix.Label(i) == label {
			return i, true
		}
	}
	return 0, false
}

// SelectMonth returns every row whose index calendar month matches the named
// bucket, in original order. An unknown month name is an out-of-domain label;
// a known month with no matching rows yields an empty selection, not an error.
func SelectMonth(t *dataset.Table, month string) (Selection, error) {
	if !validMonth(month) {
		return Selection{}, errors.NewSelectionError(fmt.Sprintf("unknown month bucket %q", month))
	}

	ix := t.Index()
	var rows []int
	for i := 0; i < ix.Len(); i++ {
		if ix.Month(i) == month {
			rows = append(rows, i)
		}
	}
	return Selection{Rows: rows}, nil
}
