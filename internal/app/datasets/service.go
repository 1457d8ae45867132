package datasets

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/soccer-prophet/internal/catalog"
	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
	"github.com/preston-bernstein/soccer-prophet/internal/metrics"
)

// Service reads resource documents for the API and records how each read went.
type Service struct {
	store   catalog.Store
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a Service over the given store.
func NewService(store catalog.Store, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		metrics: recorder,
		logger:  logger,
		now:     time.Now,
	}
}

// Load reads one resource document. Every call goes to the store; nothing is cached.
func (s *Service) Load(ctx context.Context, resource domain.Resource) (catalog.Document, error) {
	start := s.now()
	doc, err := s.store.Load(ctx, resource)
	elapsed := s.now().Sub(start)
	s.metrics.RecordResourceLoad(string(resource), elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Error(logger, "resource load failed", err,
			slog.String(logging.FieldResource, string(resource)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return catalog.Document{}, err
	}
	logging.Debug(logger, "resource loaded",
		slog.String(logging.FieldResource, string(resource)),
		slog.Int(logging.FieldCount, doc.Count),
	)
	return doc, nil
}

// Availability reports which resources currently load.
func (s *Service) Availability(ctx context.Context) map[domain.Resource]error {
	return catalog.Check(ctx, s.store)
}
