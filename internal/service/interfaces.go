package service

import (
	"context"
	"time"

	"github.com/masterroofing/sales-insights-service/internal/domain"
	"github.com/masterroofing/sales-insights-service/internal/dto"
	"github.com/masterroofing/sales-insights-service/internal/insights"
)

// EventServicer defines the interface for event ingestion operations
type EventServicer interface {
	ProcessEvent(event *dto.PublishEventRequest) (string, error)
	ProcessBulkEvents(events []dto.PublishEventRequest) ([]string, []string, error)
}

// InsightsServicer defines the interface for derived sales insights
type InsightsServicer interface {
	Refresh(ctx context.Context) (*insights.Report, error)
	Actors(ctx context.Context) (domain.Totals, map[string]domain.ActorMetrics, error)
	Pairings(ctx context.Context) ([]domain.Pairing, error)
	Ask(ctx context.Context, query string) (domain.Answer, error)
	Board(ctx context.Context, now time.Time) (domain.Board, error)
}
