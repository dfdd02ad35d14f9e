package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"gridview/internal/dataview"
	"gridview/internal/errors"
)

// ProductionService owns the secondary grouped production record set. The
// document-store connection that produced the file is an external
// collaborator; this service only loads and caches the flat records, keyed on
// file content like the primary snapshot.
type ProductionService struct {
	logger *slog.Logger
	path   string

	mu      sync.RWMutex
	hash    string
	records []dataview.Record
}

// productionRecord is the on-disk record shape
type productionRecord struct {
	Timestamp string  `json:"timestamp"`
	Group     string  `json:"group"`
	Area      string  `json:"area"`
	Quantity  float64 `json:"quantity"`
}

// NewProductionService creates a production record service for the given file
func NewProductionService(logger *slog.Logger, path string) *ProductionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductionService{
		logger: logger.With(slog.String("component", "production_service")),
		path:   path,
	}
}

// Records loads the production records, reusing the cached set while the
// file content is unchanged.
func (s *ProductionService) Records(ctx context.Context) ([]dataview.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewStorageError("failed to read production records", err)
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	s.mu.RLock()
	if s.hash == hash {
		cached := s.records
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	var raw []productionRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParseError("failed to parse production records", err)
	}
	if len(raw) == 0 {
		return nil, errors.NewEmptySourceError("production source contains no records")
	}

	records := make([]dataview.Record, 0, len(raw))
	for _, rec := range raw {
		ts, err := parseRecordTime(rec.Timestamp)
		if err != nil {
			return nil, errors.NewParseError("invalid timestamp in production record", err).
				WithContext("timestamp", rec.Timestamp)
		}
		records = append(records, dataview.Record{
			Time:     ts,
			Group:    rec.Group,
			Area:     rec.Area,
			Quantity: rec.Quantity,
		})
	}

	s.logger.InfoContext(ctx, "loaded production records",
		slog.String("path", s.path),
		slog.Int("record_count", len(records)))

	s.mu.Lock()
	s.hash = hash
	s.records = records
	s.mu.Unlock()
	return records, nil
}

// parseRecordTime accepts the index layout with an RFC 3339 fallback, since
// exported document-store records commonly carry full RFC 3339 timestamps.
func parseRecordTime(s string) (time.Time, error) {
	if ts, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Pivot computes the month pivot over the production records
func (s *ProductionService) Pivot(ctx context.Context, filter dataview.AggregateFilter) (*dataview.Pivot, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return dataview.PivotMonth(records, filter)
}

// Totals computes the single-level per-group totals over the production records
func (s *ProductionService) Totals(ctx context.Context, filter dataview.AggregateFilter) ([]dataview.GroupTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return dataview.GroupTotals(records, filter)
}
