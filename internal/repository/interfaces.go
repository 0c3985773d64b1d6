package repository

import (
	"context"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

// EventRepository defines the interface for sales event storage operations
type EventRepository interface {
	// InsertBatch inserts a batch of events into the storage
	InsertBatch(ctx context.Context, events []*domain.Event) (int, error)

	// ListEvents returns the full deduplicated event snapshot for analysis
	ListEvents(ctx context.Context) ([]domain.Event, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
