package dataset

import (
	"github.com/xuri/excelize/v2"

	"gridview/internal/errors"
)

// LoadXLSX reads a spreadsheet source with the same shape as a CSV source:
// first row is the header, first column is the timestamp index. When sheet is
// empty the first sheet of the workbook is used.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open XLSX source", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewEmptySourceError("workbook contains no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParseError("failed to read XLSX sheet", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewEmptySourceError("source contains no rows")
	}

	return buildTable(rows[0], rows[1:])
}
