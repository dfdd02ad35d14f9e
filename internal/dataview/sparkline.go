package dataview

import (
	"fmt"
	"math"

	"gridview/internal/dataset"
	"gridview/internal/errors"
)

// Summarize computes per-column descriptive statistics and a compact
// sub-series over the first calendar month of the index. Non-numeric columns
// are excluded entirely. The summary's y bounds come from the whole table so
// per-column sparklines render on a shared, comparable scale.
func Summarize(t *dataset.Table) (*SparklineSummary, error) {
	if t.Empty() {
		return nil, errors.NewEmptySourceError("nothing to summarize")
	}

	numeric := t.NumericColumnNames()
	if len(numeric) == 0 {
		return nil, errors.NewEmptyProjectionError("no numeric columns to summarize")
	}

	rows, period, err := firstMonthRows(t.Index())
	if err != nil {
		return nil, err
	}

	summary := &SparklineSummary{
		Period: period,
		Stats:  make([]ColumnStats, 0, len(numeric)),
	}
	for _, name := range numeric {
		col, _ := t.Column(name)
		summary.Stats = append(summary.Stats, columnStats(name, col, rows))
	}

	if min, max, ok := t.NumericBounds(); ok {
		summary.YMin, summary.YMax = min, max
	}
	return summary, nil
}

// firstMonthRows returns the rows belonging to the calendar month of the
// first valid index entry, with a "January 2021" style period label.
func firstMonthRows(ix dataset.Index) ([]int, string, error) {
	first := -1
	for i := 0; i < ix.Len(); i++ {
		if ix.Valid(i) {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, "", errors.NewEmptySourceError("index contains no parsable timestamps")
	}

	year, month := ix.Time(first).Year(), ix.Time(first).Month()
	var rows []int
	for i := 0; i < ix.Len(); i++ {
		if !ix.Valid(i) {
			continue
		}
		if ix.Time(i).Year() == year && ix.Time(i).Month() == month {
			rows = append(rows, i)
		}
	}
	return rows, fmt.Sprintf("%s %d", month, year), nil
}

// columnStats computes count, mean, min, max, and sample standard deviation
// (N-1 denominator) over the non-missing values of the sub-period, each
// rounded to 4 decimal places, plus the raw sub-series.
func columnStats(name string, col dataset.Column, rows []int) ColumnStats {
	series := make(FloatSeries, 0, len(rows))
	var values []float64
	for _, row := range rows {
		v := col.Floats[row]
		series = append(series, v)
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}

	stats := ColumnStats{Column: name, Count: len(values), Series: series}
	if len(values) == 0 {
		return stats
	}

	sum := 0.0
	min, max := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(values))

	variance := 0.0
	if len(values) >= 2 {
		sumSq := 0.0
		for _, v := range values {
			diff := v - mean
			sumSq += diff * diff
		}
		variance = sumSq / float64(len(values)-1)
	}

	stats.Mean = round4(mean)
	stats.Min = round4(min)
	stats.Max = round4(max)
	stats.Std = round4(math.Sqrt(variance))
	return stats
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
