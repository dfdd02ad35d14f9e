package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridview/internal/dataview"
	apperrors "gridview/internal/errors"
)

const testRecords = `[
  {"timestamp": "2021-01-01T00:00", "group": "hydro", "area": "NO1", "quantity": 10},
  {"timestamp": "2021-01-01T00:00", "group": "wind", "area": "NO1", "quantity": 5},
  {"timestamp": "2021-01-01T01:00:00Z", "group": "hydro", "area": "NO1", "quantity": 5}
]`

func newProductionService(t *testing.T, content string) *ProductionService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "production.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return NewProductionService(nil, path)
}

func TestProductionService_Records(t *testing.T) {
	svc := newProductionService(t, testRecords)

	records, err := svc.Records(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "hydro", records[0].Group)
	assert.Equal(t, "NO1", records[0].Area)
	// RFC 3339 timestamps are accepted alongside the index layout
	assert.Equal(t, 1, records[2].Time.Hour())
}

func TestProductionService_Totals(t *testing.T) {
	svc := newProductionService(t, testRecords)

	totals, err := svc.Totals(context.Background(), dataview.AggregateFilter{Month: "January"})
	require.NoError(t, err)

	require.Len(t, totals, 2)
	assert.Equal(t, dataview.GroupTotal{Group: "hydro", Total: 15}, totals[0])
	assert.Equal(t, dataview.GroupTotal{Group: "wind", Total: 5}, totals[1])
}

func TestProductionService_Pivot(t *testing.T) {
	svc := newProductionService(t, testRecords)

	pivot, err := svc.Pivot(context.Background(), dataview.AggregateFilter{Month: "January"})
	require.NoError(t, err)

	assert.Equal(t, []string{"hydro", "wind"}, pivot.Groups)
	assert.Equal(t, [][]float64{{10, 5}, {5, 0}}, pivot.Cells)
}

func TestProductionService_Errors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		svc := newProductionService(t, "{not json")
		_, err := svc.Records(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParse))
	})

	t.Run("empty record set", func(t *testing.T) {
		svc := newProductionService(t, "[]")
		_, err := svc.Records(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeEmptySource))
	})

	t.Run("bad timestamp", func(t *testing.T) {
		svc := newProductionService(t, `[{"timestamp": "yesterday", "group": "hydro", "quantity": 1}]`)
		_, err := svc.Records(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParse))
	})

	t.Run("missing file", func(t *testing.T) {
		svc := NewProductionService(nil, filepath.Join(t.TempDir(), "missing.json"))
		_, err := svc.Records(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	})
}
