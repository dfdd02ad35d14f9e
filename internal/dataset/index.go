package dataset

import (
	"time"
)

// IndexTimeFormat is the expected layout of raw index timestamps.
const IndexTimeFormat = "2006-01-02T15:04"

// Index is the ordered temporal key sequence of a Table. Each entry keeps its
// raw label alongside the parsed timestamp and a per-row validity flag, so
// unparsable entries are flagged rather than dropped and the index length
// always matches the source row count.
type Index struct {
	labels []string
	times  []time.Time
	valid  []bool
}

// ParseIndex converts raw timestamp strings into an Index. A string that does
// not match IndexTimeFormat is recorded with a zero time and a false validity
// flag; parsing never fails for a single bad value.
func ParseIndex(raw []string) Index {
	ix := Index{
		labels: make([]string, len(raw)),
		times:  make([]time.Time, len(raw)),
		valid:  make([]bool, len(raw)),
	}
	for i, s := range raw {
		ix.labels[i] = s
		t, err := time.Parse(IndexTimeFormat, s)
		if err != nil {
			continue
		}
		ix.times[i] = t
		ix.valid[i] = true
	}
	return ix
}

// Len returns the number of index entries
func (ix Index) Len() int {
	return len(ix.labels)
}

// Label returns the raw label of entry i
func (ix Index) Label(i int) string {
	return ix.labels[i]
}

// Labels returns a copy of all raw labels in order
func (ix Index) Labels() []string {
	out := make([]string, len(ix.labels))
	copy(out, ix.labels)
	return out
}

// Time returns the parsed timestamp of entry i. The zero time is returned for
// invalid entries; callers should check Valid first.
func (ix Index) Time(i int) time.Time {
	return ix.times[i]
}

// Valid reports whether entry i parsed successfully
func (ix Index) Valid(i int) bool {
	return ix.valid[i]
}

// AnyInvalid reports whether one or more entries failed to parse. Callers use
// this to surface a non-fatal warning; the table remains usable either way.
func (ix Index) AnyInvalid() bool {
	for _, v := range ix.valid {
		if !v {
			return true
		}
	}
	return false
}

// Month returns the locale-independent English month name of entry i, or the
// empty string for an invalid entry. Invalid entries therefore never match a
// month bucket.
func (ix Index) Month(i int) string {
	if !ix.valid[i] {
		return ""
	}
	return ix.times[i].Month().String()
}
