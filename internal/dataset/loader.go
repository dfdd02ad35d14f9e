package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gridview/internal/errors"
)

// LoadCSV reads a delimited text source where the first row is the header and
// the first column is the timestamp index. All remaining columns become named
// series with their kind inferred once at load time.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open CSV source", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV builds a Table from CSV content
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParseError("failed to read CSV source", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewEmptySourceError("source contains no rows")
	}

	return buildTable(rows[0], rows[1:])
}

// buildTable constructs a Table from a header row and data rows. The first
// header cell names the index; each remaining header cell names a column.
func buildTable(header []string, rows [][]string) (*Table, error) {
	if len(header) < 2 {
		return nil, errors.NewEmptySourceError("source contains no data columns")
	}
	if len(rows) == 0 {
		return nil, errors.NewEmptySourceError("source contains no data rows")
	}

	raw := make([]string, len(rows))
	cells := make([][]string, len(header)-1)
	for c := range cells {
		cells[c] = make([]string, len(rows))
	}
	for i, row := range rows {
		if len(row) > 0 {
			raw[i] = strings.TrimSpace(row[0])
		}
		for c := 0; c < len(header)-1; c++ {
			if c+1 < len(row) {
				cells[c][i] = strings.TrimSpace(row[c+1])
			}
		}
	}

	index := ParseIndex(raw)

	columns := make([]Column, 0, len(header)-1)
	for c, name := range header[1:] {
		columns = append(columns, inferColumn(strings.TrimSpace(name), cells[c]))
	}

	return NewTable(index, columns)
}

// inferColumn tags a column numeric when every non-empty cell parses as a
// float; empty cells become NaN missing markers. Anything else stays text.
func inferColumn(name string, cells []string) Column {
	floats := make([]float64, len(cells))
	numeric := true
	for i, cell := range cells {
		if cell == "" {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			numeric = false
			break
		}
		floats[i] = v
	}

	if numeric {
		return Column{Name: name, Kind: KindNumeric, Floats: floats}
	}

	texts := make([]string, len(cells))
	copy(texts, cells)
	return Column{Name: name, Kind: KindText, Texts: texts}
}
