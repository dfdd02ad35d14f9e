package dataset

import (
	"fmt"
	"math"

	"gridview/internal/errors"
)

// ColumnKind tags a column's type once at construction, so transformations
// never re-infer numeric-vs-text per call.
type ColumnKind string

const (
	KindNumeric ColumnKind = "numeric"
	KindText    ColumnKind = "text"
)

// Column is a single named series of a Table. A numeric column stores floats
// with NaN as the missing-value marker; a text column stores raw strings.
type Column struct {
	Name   string
	Kind   ColumnKind
	Floats []float64
	Texts  []string
}

// Len returns the number of values in the column
func (c Column) Len() int {
	if c.Kind == KindNumeric {
		return len(c.Floats)
	}
	return len(c.Texts)
}

// Table is the immutable snapshot of a loaded source: an ordered temporal
// index plus named typed columns, each exactly as long as the index.
type Table struct {
	index   Index
	columns []Column
	byName  map[string]int
}

// NewTable builds a Table from an index and columns, validating the length
// and unique-name invariants.
func NewTable(index Index, columns []Column) (*Table, error) {
	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.Len() != index.Len() {
			return nil, errors.NewValidationError(
				fmt.Sprintf("column %q has %d values for %d index entries", col.Name, col.Len(), index.Len()), nil)
		}
		if _, dup := byName[col.Name]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate column name %q", col.Name), nil)
		}
		byName[col.Name] = i
	}
	return &Table{index: index, columns: columns, byName: byName}, nil
}

// Index returns the table's temporal index
func (t *Table) Index() Index {
	return t.index
}

// Rows returns the number of rows
func (t *Table) Rows() int {
	return t.index.Len()
}

// ColumnNames returns all column names in source order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// NumericColumnNames returns the names of numeric columns in source order
func (t *Table) NumericColumnNames() []string {
	var names []string
	for _, col := range t.columns {
		if col.Kind == KindNumeric {
			names = append(names, col.Name)
		}
	}
	return names
}

// Column returns the named column and whether it exists
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// Columns returns all columns in source order
func (t *Table) Columns() []Column {
	return t.columns
}

// Empty reports whether the table has zero rows or zero columns
func (t *Table) Empty() bool {
	return t.index.Len() == 0 || len(t.columns) == 0
}

// ParseWarning reports whether one or more index timestamps failed to parse.
// This is informational only; the table is still usable.
func (t *Table) ParseWarning() bool {
	return t.index.AnyInvalid()
}

// NumericBounds returns the minimum and maximum value across every numeric
// column of the whole table, ignoring NaN entries. ok is false when no finite
// numeric value exists. These are the shared y-axis bounds that keep
// per-column sparklines visually comparable.
func (t *Table) NumericBounds() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, col := range t.columns {
		if col.Kind != KindNumeric {
			continue
		}
		for _, v := range col.Floats {
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}
