package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "gridview/internal/errors"
	"gridview/internal/services"
)

const handlerRecords = `[
  {"timestamp": "2021-01-01T00:00", "group": "hydro", "area": "NO1", "quantity": 10},
  {"timestamp": "2021-01-01T00:00", "group": "wind", "area": "NO1", "quantity": 5},
  {"timestamp": "2021-01-01T01:00", "group": "hydro", "area": "NO2", "quantity": 5}
]`

func newProductionServer(t *testing.T) *httptest.Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "production.json")
	require.NoError(t, os.WriteFile(path, []byte(handlerRecords), 0644))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := NewProductionHandler(services.NewProductionService(logger, path), logger, apierrors.NewErrorHandler(logger))

	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestGetTotals(t *testing.T) {
	srv := newProductionServer(t)

	resp, err := http.Get(srv.URL + "/totals?month=January")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Totals []struct {
			Group string  `json:"group"`
			Total float64 `json:"total"`
		} `json:"totals"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Totals, 2)
	assert.Equal(t, "hydro", body.Totals[0].Group)
	assert.Equal(t, 15.0, body.Totals[0].Total)
}

func TestGetPivot(t *testing.T) {
	srv := newProductionServer(t)

	resp, err := http.Get(srv.URL + "/pivot?month=January&area=NO1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pivot struct {
		Labels []string    `json:"labels"`
		Groups []string    `json:"groups"`
		Cells  [][]float64 `json:"cells"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pivot))

	assert.Equal(t, []string{"2021-01-01T00:00"}, pivot.Labels)
	assert.Equal(t, []string{"hydro", "wind"}, pivot.Groups)
	assert.Equal(t, [][]float64{{10, 5}}, pivot.Cells)
}

func TestGetPivot_GroupSubset(t *testing.T) {
	srv := newProductionServer(t)

	resp, err := http.Get(srv.URL + "/pivot?month=January&groups=hydro")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pivot struct {
		Groups []string `json:"groups"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pivot))
	assert.Equal(t, []string{"hydro"}, pivot.Groups)
}

func TestProductionHandler_Errors(t *testing.T) {
	srv := newProductionServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "missing month", path: "/totals", wantStatus: http.StatusBadRequest},
		{name: "unknown month", path: "/totals?month=Smarch", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
