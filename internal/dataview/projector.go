package dataview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gridview/internal/dataset"
	"gridview/internal/errors"
)

// ProjectColumn extracts a single column over the selection, coercing values
// to numeric. A value that cannot be coerced becomes a NaN missing marker and
// bumps the Missing counter; it never aborts the projection.
func ProjectColumn(t *dataset.Table, sel Selection, name string) (*SingleProjection, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, errors.NewSelectionError(fmt.Sprintf("column %q not in table", name))
	}

	ix := t.Index()
	proj := &SingleProjection{
		Column: name,
		Labels: make([]string, 0, sel.Len()),
		Values: make(FloatSeries, 0, sel.Len()),
	}
	for _, row := range sel.Rows {
		proj.Labels = append(proj.Labels, ix.Label(row))
		v := coerce(col, row)
		if math.IsNaN(v) {
			proj.Missing++
		}
		proj.Values = append(proj.Values, v)
	}
	return proj, nil
}

// coerce returns the numeric value of a cell, NaN when coercion fails
func coerce(col dataset.Column, row int) float64 {
	if col.Kind == dataset.KindNumeric {
		return col.Floats[row]
	}
	s := strings.TrimSpace(col.Texts[row])
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ProjectAll extracts every numeric column over the selection and normalizes
// each independently to [0,1] using the min and max of the selected range
// only. A column constant over the range has no defined normalization; it is
// flagged degenerate with NaN values rather than coerced to a default.
func ProjectAll(t *dataset.Table, sel Selection) (*AllProjection, error) {
	numeric := t.NumericColumnNames()
	if len(numeric) == 0 {
		return nil, errors.NewEmptyProjectionError("no numeric columns to project")
	}

	ix := t.Index()
	labels := make([]string, 0, sel.Len())
	for _, row := range sel.Rows {
		labels = append(labels, ix.Label(row))
	}

	proj := &AllProjection{
		Labels:  labels,
		Columns: make([]ProjectedColumn, 0, len(numeric)),
	}
	for _, name := range numeric {
		col, _ := t.Column(name)
		proj.Columns = append(proj.Columns, normalize(name, col, sel))
	}
	return proj, nil
}

// normalize min-max scales one column over the selected rows
func normalize(name string, col dataset.Column, sel Selection) ProjectedColumn {
	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range sel.Rows {
		v := col.Floats[row]
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	values := make(FloatSeries, len(sel.Rows))
	if min >= max {
		// constant or all-missing over the range: normalization undefined
		for i := range values {
			values[i] = math.NaN()
		}
		return ProjectedColumn{Name: name, Values: values, Degenerate: true}
	}

	for i, row := range sel.Rows {
		v := col.Floats[row]
		if math.IsNaN(v) {
			values[i] = math.NaN()
			continue
		}
		values[i] = (v - min) / (max - min)
	}
	return ProjectedColumn{Name: name, Values: values}
}
