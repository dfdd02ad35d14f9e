package dataview

import (
	"math"
	"strconv"
)

// ColumnAll requests a projection over every numeric column.
const ColumnAll = "ALL"

// FloatSeries is a value sequence that marshals NaN missing markers as JSON
// null, so a chart client receives gaps instead of an encoding failure.
type FloatSeries []float64

// MarshalJSON implements json.Marshaler
func (s FloatSeries) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(s)*8+2)
	buf = append(buf, '[')
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	buf = append(buf, ']')
	return buf, nil
}

// SingleProjection is a single-column view over a selection: labels and
// values aligned position by position. Missing counts the values that could
// not be coerced to numeric (or were missing in the source).
type SingleProjection struct {
	Column  string      `json:"column"`
	Labels  []string    `json:"labels"`
	Values  FloatSeries `json:"values"`
	Missing int         `json:"missing"`
}

// ProjectedColumn is one normalized series of an all-columns projection. A
// degenerate column (constant over the selected range) keeps NaN values and
// is flagged rather than silently coerced to a default.
type ProjectedColumn struct {
	Name       string      `json:"name"`
	Values     FloatSeries `json:"values"`
	Degenerate bool        `json:"degenerate,omitempty"`
}

// AllProjection is the all-numeric-columns view: per-column series normalized
// to [0,1] over the selected range, aligned on a shared label sequence.
type AllProjection struct {
	Labels  []string          `json:"labels"`
	Columns []ProjectedColumn `json:"columns"`
}

// ColumnStats holds descriptive statistics for one numeric column over the
// sparkline sub-period, plus the raw sub-series for compact trend rendering.
type ColumnStats struct {
	Column string      `json:"column"`
	Count  int         `json:"count"`
	Mean   float64     `json:"mean"`
	Min    float64     `json:"min"`
	Max    float64     `json:"max"`
	Std    float64     `json:"std"`
	Series FloatSeries `json:"series"`
}

// SparklineSummary summarizes every numeric column over the first calendar
// month of the index. YMin and YMax are the bounds across all numeric columns
// of the full table so per-column sparklines share a comparable scale.
type SparklineSummary struct {
	Period string        `json:"period"`
	Stats  []ColumnStats `json:"stats"`
	YMin   float64       `json:"y_min"`
	YMax   float64       `json:"y_max"`
}
