package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/masterroofing/sales-insights-service/internal/domain"
	"github.com/masterroofing/sales-insights-service/internal/dto"
	"github.com/masterroofing/sales-insights-service/internal/metrics"
	"github.com/masterroofing/sales-insights-service/internal/queue"
)

// EventService validates sales events and publishes them to the queue
type EventService struct {
	publisher queue.QueuePublisher
	log       *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(publisher queue.QueuePublisher, log *zap.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		log:       log,
	}
}

// computeEventID generates a deterministic event ID based on event content.
// SHA-256 of: event_type|project_name|assignee|scanned_at, so resubmitting
// the same event is idempotent end to end (the store dedupes on event_id).
func computeEventID(event *dto.PublishEventRequest) string {
	data := fmt.Sprintf("%s|%s|%s|%d",
		event.EventType,
		event.ProjectName,
		event.Assignee,
		event.ScannedAt.UnixNano(),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// ProcessEvent validates and publishes a single event. Validation here is the
// fail-fast boundary: bad enum values and negative amounts never reach the
// event store, while softer data-quality issues (missing project or assignee)
// are allowed through and degrade gracefully in the insights engine.
func (s *EventService) ProcessEvent(event *dto.PublishEventRequest) (string, error) {
	ctx := context.Background()

	if _, err := domain.ParseEventType(event.EventType); err != nil {
		s.log.Warn("Rejecting event with invalid type",
			zap.String("event_type", event.EventType))
		return "", err
	}

	if event.DollarAmount != nil && *event.DollarAmount < 0 {
		s.log.Warn("Rejecting event with negative dollar amount",
			zap.Float64("dollar_amount", *event.DollarAmount))
		return "", fmt.Errorf("dollar_amount must be non-negative, got %f", *event.DollarAmount)
	}

	now := time.Now().Add(time.Minute)
	if event.ScannedAt.After(now) {
		s.log.Warn("Rejecting event scanned in the future",
			zap.Time("scanned_at", event.ScannedAt))
		return "", fmt.Errorf("scanned_at cannot be in the future: %s", event.ScannedAt.Format(time.RFC3339))
	}

	eventID := computeEventID(event)

	if err := s.publisher.PublishEvent(ctx, event, eventID); err != nil {
		return "", fmt.Errorf("failed to publish event to queue: %w", err)
	}

	metrics.EventsPublished.Inc()
	return eventID, nil
}

// ProcessBulkEvents validates and processes multiple events
func (s *EventService) ProcessBulkEvents(events []dto.PublishEventRequest) ([]string, []string, error) {
	var eventIDs []string
	var errors []string

	for i, event := range events {
		eventID, err := s.ProcessEvent(&event)
		if err != nil {
			errors = append(errors, err.Error())
			s.log.Warn("Failed to process event in bulk",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("event_type", event.EventType))
			continue
		}
		eventIDs = append(eventIDs, eventID)
	}

	return eventIDs, errors, nil
}
