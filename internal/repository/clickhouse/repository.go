package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

// Repository implements repository.EventRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the sales_events table. ReplacingMergeTree on the
// content-hash event_id keeps replayed SQS deliveries idempotent.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS sales_events (
		event_id String,
		event_type LowCardinality(String),
		project_name String,
		assignee String,
		scanned_at DateTime64(3),
		dollar_amount Nullable(Float64),
		processed_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (event_id)
	ORDER BY (event_id, scanned_at)
	PARTITION BY toYYYYMM(scanned_at)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create sales_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized")
	return nil
}

// InsertBatch inserts a batch of events into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO sales_events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		if event.Version == 0 {
			event.Version = uint64(time.Now().UnixNano())
		}

		err := batch.Append(
			event.EventID,
			string(event.EventType),
			event.ProjectName,
			event.Assignee,
			event.ScannedAt,
			event.DollarAmount,
			event.ProcessedAt,
			event.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// ListEvents returns the deduplicated event snapshot, oldest first. FINAL
// collapses ReplacingMergeTree duplicates so a replayed event appears once.
func (r *Repository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := `
		SELECT
			event_id,
			event_type,
			project_name,
			assignee,
			scanned_at,
			dollar_amount,
			processed_at,
			version
		FROM sales_events FINAL
		ORDER BY scanned_at ASC
	`

	rows, err := r.client.Conn().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close event rows", zap.Error(err))
		}
	}(rows)

	var events []domain.Event
	for rows.Next() {
		var (
			event     domain.Event
			eventType string
		)
		if err := rows.Scan(
			&event.EventID,
			&eventType,
			&event.ProjectName,
			&event.Assignee,
			&event.ScannedAt,
			&event.DollarAmount,
			&event.ProcessedAt,
			&event.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		event.EventType = domain.EventType(eventType)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
