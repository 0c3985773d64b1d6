package consumer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

// jsonEventMessage mirrors the queue message body published by the API.
type jsonEventMessage struct {
	EventID      string   `json:"event_id"`
	EventType    string   `json:"event_type"`
	ProjectName  string   `json:"project_name"`
	Assignee     string   `json:"assignee"`
	ScannedAt    string   `json:"scanned_at"`
	DollarAmount *float64 `json:"dollar_amount"`
}

// JSONEventParser implements MessageParser for JSON-formatted sales event
// messages. Parsing is where ingestion validation fails fast: an unknown
// event_type or a negative dollar_amount never reaches the event store.
type JSONEventParser struct{}

// NewJSONEventParser creates a new JSON event parser
func NewJSONEventParser() *JSONEventParser {
	return &JSONEventParser{}
}

// Parse parses a JSON message body into a validated Event
func (p *JSONEventParser) Parse(body []byte) (*domain.Event, error) {
	var msg jsonEventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	eventType, err := domain.ParseEventType(msg.EventType)
	if err != nil {
		return nil, err
	}

	if msg.DollarAmount != nil && *msg.DollarAmount < 0 {
		return nil, fmt.Errorf("dollar_amount must be non-negative, got %f", *msg.DollarAmount)
	}

	// A missing timestamp is a data-quality issue handled downstream, but an
	// unparseable one is a malformed message.
	var scannedAt time.Time
	if msg.ScannedAt != "" {
		scannedAt, err = time.Parse(time.RFC3339Nano, msg.ScannedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scanned_at: %w", err)
		}
	}

	event := &domain.Event{
		EventID:      msg.EventID,
		EventType:    eventType,
		ProjectName:  msg.ProjectName,
		Assignee:     msg.Assignee,
		ScannedAt:    scannedAt,
		DollarAmount: msg.DollarAmount,
		ProcessedAt:  time.Now(),
		Version:      uint64(time.Now().UnixNano()),
	}

	return event, nil
}
