package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"gridview/internal/config"
	"gridview/internal/dataset"
	"gridview/internal/dataview"
)

// ViewService serves view requests against the primary time-indexed source.
// The load step is cached on source identity: path plus content hash, never
// view parameters. Concurrent loads of the same content collapse through
// singleflight, and a changed file fully replaces the snapshot.
type ViewService struct {
	logger *slog.Logger
	cfg    config.DataConfig
	isXLSX bool

	mu       sync.RWMutex
	snapshot *snapshot
	group    singleflight.Group
}

type snapshot struct {
	hash  string
	table *dataset.Table
}

// NewViewService creates a view service for the configured source
func NewViewService(logger *slog.Logger, cfg *config.Config) *ViewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewService{
		logger: logger.With(slog.String("component", "view_service")),
		cfg:    cfg.Data,
		isXLSX: cfg.SourceIsXLSX(),
	}
}

// Snapshot returns the current table snapshot, loading or reloading the
// source if its content changed since the last load.
func (s *ViewService) Snapshot(ctx context.Context) (*dataset.Table, error) {
	data, err := os.ReadFile(s.cfg.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", s.cfg.SourcePath, err)
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	s.mu.RLock()
	cached := s.snapshot
	s.mu.RUnlock()
	if cached != nil && cached.hash == hash {
		return cached.table, nil
	}

	v, err, _ := s.group.Do(hash, func() (interface{}, error) {
		table, err := s.load()
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "loaded source snapshot",
			slog.String("path", s.cfg.SourcePath),
			slog.Int("rows", table.Rows()),
			slog.Int("columns", len(table.ColumnNames())),
			slog.Bool("parse_warning", table.ParseWarning()))

		s.mu.Lock()
		s.snapshot = &snapshot{hash: hash, table: table}
		s.mu.Unlock()
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dataset.Table), nil
}

func (s *ViewService) load() (*dataset.Table, error) {
	if s.isXLSX {
		return dataset.LoadXLSX(s.cfg.SourcePath, s.cfg.SourceSheet)
	}
	return dataset.LoadCSV(s.cfg.SourcePath)
}

// ExecuteView runs a fully specified view request against the snapshot
func (s *ViewService) ExecuteView(ctx context.Context, req dataview.ViewRequest) (*dataview.ViewResult, error) {
	table, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return dataview.Execute(table, req)
}

// DisplayLabels returns the downsampled index labels for range selection
func (s *ViewService) DisplayLabels(ctx context.Context) ([]string, error) {
	table, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return dataview.DisplayLabels(table)
}

// Sparkline returns the first-month summary of the snapshot
func (s *ViewService) Sparkline(ctx context.Context) (*dataview.SparklineSummary, error) {
	table, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return dataview.Summarize(table)
}

// PreviewColumn describes one column of a table preview
type PreviewColumn struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// TablePreview is the row-capped table page payload
type TablePreview struct {
	Columns      []PreviewColumn `json:"columns"`
	Labels       []string        `json:"labels"`
	Rows         [][]string      `json:"rows"`
	TotalRows    int             `json:"total_rows"`
	ParseWarning bool            `json:"parse_warning,omitempty"`
}

// Preview returns the first rows of the snapshot, capped at the configured
// preview limit. The cap bounds the host's rendering work; the pipeline
// itself never truncates.
func (s *ViewService) Preview(ctx context.Context) (*TablePreview, error) {
	table, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	limit := table.Rows()
	if limit > s.cfg.PreviewLimit {
		limit = s.cfg.PreviewLimit
	}

	cols := table.Columns()
	preview := &TablePreview{
		Columns:      make([]PreviewColumn, len(cols)),
		Labels:       make([]string, limit),
		Rows:         make([][]string, limit),
		TotalRows:    table.Rows(),
		ParseWarning: table.ParseWarning(),
	}
	for i, col := range cols {
		preview.Columns[i] = PreviewColumn{Name: col.Name, Kind: string(col.Kind)}
	}

	ix := table.Index()
	for row := 0; row < limit; row++ {
		preview.Labels[row] = ix.Label(row)
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = formatCell(col, row)
		}
		preview.Rows[row] = cells
	}
	return preview, nil
}

func formatCell(col dataset.Column, row int) string {
	if col.Kind == dataset.KindText {
		return col.Texts[row]
	}
	v := col.Floats[row]
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
