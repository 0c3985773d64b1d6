package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/masterroofing/sales-insights-service/internal/domain"
	"github.com/masterroofing/sales-insights-service/internal/insights"
	"github.com/masterroofing/sales-insights-service/internal/metrics"
	"github.com/masterroofing/sales-insights-service/internal/repository"
)

// TaskSource supplies the task feed for the Kanban board
type TaskSource interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
}

// InsightsService owns the latest derived report. Refresh re-fetches the
// event snapshot and rebuilds everything wholesale; readers see either the
// previous report or the new one, never a half-built mix.
type InsightsService struct {
	repository repository.EventRepository
	tasks      TaskSource
	responder  *insights.Responder
	log        *zap.Logger

	mu     sync.RWMutex
	report *insights.Report
}

// NewInsightsService creates a new insights service
func NewInsightsService(repo repository.EventRepository, tasks TaskSource, log *zap.Logger) *InsightsService {
	return &InsightsService{
		repository: repo,
		tasks:      tasks,
		responder:  insights.NewResponder(),
		log:        log,
	}
}

// Refresh re-fetches the event snapshot and runs the full analysis pipeline
func (s *InsightsService) Refresh(ctx context.Context) (*insights.Report, error) {
	events, err := s.repository.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event snapshot: %w", err)
	}

	report := insights.Analyze(events)

	if report.Malformed > 0 {
		s.log.Warn("Snapshot contains events without timestamps",
			zap.Int("malformed", report.Malformed),
			zap.Int("total", len(events)))
	}

	s.mu.Lock()
	s.report = report
	s.mu.Unlock()

	metrics.Refreshes.Inc()
	s.log.Info("Insights refreshed",
		zap.Int("events", len(events)),
		zap.Int("pairings", len(report.Pairings)),
		zap.Int("actors", len(report.Actors)))

	return report, nil
}

// current returns the latest report, running the first refresh lazily
func (s *InsightsService) current(ctx context.Context) (*insights.Report, error) {
	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()

	if report != nil {
		return report, nil
	}
	return s.Refresh(ctx)
}

// Actors returns the dashboard totals and per-actor metrics
func (s *InsightsService) Actors(ctx context.Context) (domain.Totals, map[string]domain.ActorMetrics, error) {
	report, err := s.current(ctx)
	if err != nil {
		return domain.Totals{}, nil, err
	}
	return report.Totals, report.Actors, nil
}

// Pairings returns the derived RFP-to-proposal pairings
func (s *InsightsService) Pairings(ctx context.Context) ([]domain.Pairing, error) {
	report, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return report.Pairings, nil
}

// Ask answers a free-text analytics question against the latest report
func (s *InsightsService) Ask(ctx context.Context, query string) (domain.Answer, error) {
	report, err := s.current(ctx)
	if err != nil {
		return domain.Answer{}, err
	}
	return s.responder.Respond(query, report), nil
}

// Board fetches the task feed and buckets it for Kanban display. The feed is
// small and external, so it is fetched fresh on every call rather than cached.
func (s *InsightsService) Board(ctx context.Context, now time.Time) (domain.Board, error) {
	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	return insights.BucketTasks(tasks, now), nil
}
