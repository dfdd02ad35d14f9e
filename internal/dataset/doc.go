// Package dataset provides the canonical in-memory representation of a loaded
// time-series source: a date-ordered index plus named, typed columns.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Index: parses raw timestamp strings into an ordered, validated temporal index
// 2. Table: the immutable column store built from an index and typed columns
// 3. Loaders: build a Table from CSV or XLSX sources, inferring column kinds once
//
// # Usage
//
// Loading a CSV source:
//
//	table, err := dataset.LoadCSV("data/open-meteo-subset.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if table.ParseWarning() {
//	    log.Println("some index timestamps could not be parsed")
//	}
//
// A Table is read-only after construction; every downstream transformation
// returns a new value and never mutates the snapshot in place.
package dataset
