package dataview

import (
	"fmt"
	"sort"
	"time"

	"gridview/internal/dataset"
	"gridview/internal/errors"
)

// Record is one row of the externally supplied production dataset: a
// timestamp, a categorical group (production type), a categorical partition
// (price area), and a quantity.
type Record struct {
	Time     time.Time `json:"timestamp"`
	Group    string    `json:"group"`
	Area     string    `json:"area"`
	Quantity float64   `json:"quantity"`
}

// AggregateFilter narrows the record set before aggregation. Month is
// required; Groups and Area are optional subsets.
type AggregateFilter struct {
	Month  string
	Groups []string
	Area   string
}

// Pivot is a reshaped record set: rows keyed by distinct timestamp, columns
// keyed by group, cells holding summed quantities. Absent combinations are
// zero, never missing — no production is zero production.
type Pivot struct {
	Labels []string    `json:"labels"`
	Groups []string    `json:"groups"`
	Cells  [][]float64 `json:"cells"`
}

// GroupTotal is one group's summed quantity across the filtered set
type GroupTotal struct {
	Group string  `json:"group"`
	Total float64 `json:"total"`
}

// filterRecords applies the month, group-subset, and area filters, keeping
// input order.
func filterRecords(records []Record, f AggregateFilter) ([]Record, error) {
	if !validMonth(f.Month) {
		return nil, errors.NewSelectionError(fmt.Sprintf("unknown month bucket %q", f.Month))
	}

	var subset map[string]struct{}
	if len(f.Groups) > 0 {
		subset = make(map[string]struct{}, len(f.Groups))
		for _, g := range f.Groups {
			subset[g] = struct{}{}
		}
	}

	var out []Record
	for _, rec := range records {
		if rec.Time.Month().String() != f.Month {
			continue
		}
		if f.Area != "" && rec.Area != f.Area {
			continue
		}
		if subset != nil {
			if _, ok := subset[rec.Group]; !ok {
				continue
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// PivotMonth filters records to the requested month (and optional group and
// area subsets) and pivots them: one row per distinct timestamp, one column
// per group present after filtering, each cell the sum of quantities for that
// combination. Timestamps and groups keep first-encounter order.
func PivotMonth(records []Record, f AggregateFilter) (*Pivot, error) {
	filtered, err := filterRecords(records, f)
	if err != nil {
		return nil, err
	}

	rowIdx := make(map[time.Time]int)
	colIdx := make(map[string]int)
	var times []time.Time
	var groups []string
	for _, rec := range filtered {
		if _, ok := rowIdx[rec.Time]; !ok {
			rowIdx[rec.Time] = len(times)
			times = append(times, rec.Time)
		}
		if _, ok := colIdx[rec.Group]; !ok {
			colIdx[rec.Group] = len(groups)
			groups = append(groups, rec.Group)
		}
	}

	cells := make([][]float64, len(times))
	for i := range cells {
		cells[i] = make([]float64, len(groups))
	}
	for _, rec := range filtered {
		cells[rowIdx[rec.Time]][colIdx[rec.Group]] += rec.Quantity
	}

	labels := make([]string, len(times))
	for i, ts := range times {
		labels[i] = ts.Format(dataset.IndexTimeFormat)
	}
	return &Pivot{Labels: labels, Groups: groups, Cells: cells}, nil
}

// GroupTotals computes the single-level aggregation: total quantity per group
// across the full filtered set, ignoring time. Results are sorted descending
// by total; equal totals keep first-encounter order.
func GroupTotals(records []Record, f AggregateFilter) ([]GroupTotal, error) {
	filtered, err := filterRecords(records, f)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	totals := make([]GroupTotal, 0)
	for _, rec := range filtered {
		i, ok := idx[rec.Group]
		if !ok {
			i = len(totals)
			idx[rec.Group] = i
			totals = append(totals, GroupTotal{Group: rec.Group})
		}
		totals[i].Total += rec.Quantity
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	return totals, nil
}
