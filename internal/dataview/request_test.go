package dataview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridview/internal/dataset"
	apperrors "gridview/internal/errors"
)

func TestExecute(t *testing.T) {
	table := mustTable(t, `time,temp,wind
2021-01-01T00:00,1,3
2021-01-01T01:00,2,9
2021-02-01T00:00,3,6
`)

	t.Run("range mode single column", func(t *testing.T) {
		result, err := Execute(table, ViewRequest{
			Mode:   ModeRange,
			Start:  "2021-01-01T00:00",
			End:    "2021-01-01T01:00",
			Column: "temp",
		})
		require.NoError(t, err)

		assert.Equal(t, 2, result.RowCount)
		assert.Equal(t, "2021-01-01T00:00", result.StartLabel)
		assert.Equal(t, "2021-01-01T01:00", result.EndLabel)
		require.NotNil(t, result.Single)
		assert.Nil(t, result.All)
		assert.Equal(t, []float64{1, 2}, []float64(result.Single.Values))
	})

	t.Run("swapped range yields identical result", func(t *testing.T) {
		forward, err := Execute(table, ViewRequest{Mode: ModeRange, Start: "2021-01-01T00:00", End: "2021-02-01T00:00", Column: "temp"})
		require.NoError(t, err)
		reversed, err := Execute(table, ViewRequest{Mode: ModeRange, Start: "2021-02-01T00:00", End: "2021-01-01T00:00", Column: "temp"})
		require.NoError(t, err)
		assert.Equal(t, forward, reversed)
	})

	t.Run("month mode all columns", func(t *testing.T) {
		result, err := Execute(table, ViewRequest{Mode: ModeMonth, Month: "January", Column: ColumnAll})
		require.NoError(t, err)

		assert.Equal(t, 2, result.RowCount)
		require.NotNil(t, result.All)
		assert.Nil(t, result.Single)
		require.Len(t, result.All.Columns, 2)
		assert.Equal(t, []float64{0.0, 1.0}, []float64(result.All.Columns[0].Values))
	})

	t.Run("parse warning propagated", func(t *testing.T) {
		warned := mustTable(t, "time,v\n2021-01-01T00:00,1\nbogus,2\n2021-01-02T00:00,3\n")
		result, err := Execute(warned, ViewRequest{Mode: ModeMonth, Month: "January", Column: "v"})
		require.NoError(t, err)
		assert.True(t, result.ParseWarning)
	})
}

func TestExecute_Errors(t *testing.T) {
	table := mustTable(t, `time,temp
2021-01-01T00:00,1
2021-01-01T01:00,2
`)

	tests := []struct {
		name     string
		req      ViewRequest
		wantType apperrors.ErrorType
	}{
		{
			name:     "range mode missing labels",
			req:      ViewRequest{Mode: ModeRange, Column: "temp"},
			wantType: apperrors.ErrTypeValidation,
		},
		{
			name:     "month mode missing bucket",
			req:      ViewRequest{Mode: ModeMonth, Column: "temp"},
			wantType: apperrors.ErrTypeValidation,
		},
		{
			name:     "unknown mode",
			req:      ViewRequest{Mode: "quarter", Column: "temp"},
			wantType: apperrors.ErrTypeValidation,
		},
		{
			name:     "out of domain label",
			req:      ViewRequest{Mode: ModeRange, Start: "2030-01-01T00:00", End: "2021-01-01T01:00", Column: "temp"},
			wantType: apperrors.ErrTypeSelection,
		},
		{
			name:     "unknown column",
			req:      ViewRequest{Mode: ModeMonth, Month: "January", Column: "humidity"},
			wantType: apperrors.ErrTypeSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(table, tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestExecute_EmptySnapshot(t *testing.T) {
	empty, err := dataset.NewTable(dataset.ParseIndex(nil), nil)
	require.NoError(t, err)

	_, err = Execute(empty, ViewRequest{Mode: ModeMonth, Month: "January", Column: ColumnAll})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeEmptySource))

	_, err = Execute(nil, ViewRequest{Mode: ModeMonth, Month: "January", Column: ColumnAll})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeEmptySource))
}
