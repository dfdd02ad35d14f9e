package dataview

import (
	"gridview/internal/dataset"
	"gridview/internal/errors"
)

// Request modes
const (
	ModeRange = "range"
	ModeMonth = "month"
)

// ViewRequest is the fully specified view-request contract consumed from the
// UI collaborator. There is no ambient selection state: every call carries
// everything the pipeline needs.
type ViewRequest struct {
	Mode        string   `json:"mode" validate:"required,oneof=range month"`
	Start       string   `json:"start,omitempty"`
	End         string   `json:"end,omitempty"`
	Month       string   `json:"month,omitempty"`
	Column      string   `json:"column" validate:"required"`
	GroupSubset []string `json:"group_subset,omitempty"`
}

// ViewResult carries exactly one projection shape plus the resolved range
// echo a host needs to caption the view.
type ViewResult struct {
	Mode         string            `json:"mode"`
	StartLabel   string            `json:"start_label,omitempty"`
	EndLabel     string            `json:"end_label,omitempty"`
	Month        string            `json:"month,omitempty"`
	RowCount     int               `json:"row_count"`
	ParseWarning bool              `json:"parse_warning,omitempty"`
	Single       *SingleProjection `json:"single,omitempty"`
	All          *AllProjection    `json:"all,omitempty"`
}

// Execute resolves the request's selection against the table snapshot and
// runs the requested projection. Requests against an empty snapshot
// short-circuit with an empty-source error instead of failing deep inside a
// transformation.
func Execute(t *dataset.Table, req ViewRequest) (*ViewResult, error) {
	if t == nil || t.Empty() {
		return nil, errors.NewEmptySourceError("nothing to display")
	}

	var (
		sel Selection
		err error
	)
	switch req.Mode {
	case ModeRange:
		if req.Start == "" || req.End == "" {
			return nil, errors.NewValidationError("range mode requires start and end labels", nil)
		}
		sel, err = SelectRange(t, req.Start, req.End)
	case ModeMonth:
		if req.Month == "" {
			return nil, errors.NewValidationError("month mode requires a month bucket", nil)
		}
		sel, err = SelectMonth(t, req.Month)
	default:
		return nil, errors.NewValidationError("mode must be range or month", nil)
	}
	if err != nil {
		return nil, err
	}

	result := &ViewResult{
		Mode:         req.Mode,
		Month:        req.Month,
		RowCount:     sel.Len(),
		ParseWarning: t.ParseWarning(),
	}
	if sel.Len() > 0 {
		ix := t.Index()
		result.StartLabel = ix.Label(sel.Rows[0])
		result.EndLabel = ix.Label(sel.Rows[len(sel.Rows)-1])
	}

	if req.Column == ColumnAll {
		result.All, err = ProjectAll(t, sel)
	} else {
		result.Single, err = ProjectColumn(t, sel, req.Column)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
