package consumer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

func TestJSONEventParser_Parse_Success(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "abc123",
		"event_type": "PROPOSAL_SENT",
		"project_name": "Beach 67th St",
		"assignee": "John Mitchell",
		"scanned_at": "2025-06-15T09:30:00Z",
		"dollar_amount": 50000
	}`)

	event, err := parser.Parse(body)

	assert.NoError(t, err)
	assert.Equal(t, "abc123", event.EventID)
	assert.Equal(t, domain.EventProposalSent, event.EventType)
	assert.Equal(t, "Beach 67th St", event.ProjectName)
	assert.Equal(t, "John Mitchell", event.Assignee)
	assert.Equal(t, time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC), event.ScannedAt)
	assert.Equal(t, 50000.0, *event.DollarAmount)
	assert.NotZero(t, event.Version)
}

func TestJSONEventParser_Parse_InvalidJSON(t *testing.T) {
	parser := NewJSONEventParser()

	_, err := parser.Parse([]byte(`{invalid json}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal message body")
}

func TestJSONEventParser_Parse_UnknownEventType(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "abc123",
		"event_type": "BID_MAYBE",
		"scanned_at": "2025-06-15T09:30:00Z"
	}`)

	_, err := parser.Parse(body)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event_type")
}

func TestJSONEventParser_Parse_NegativeDollarAmount(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "abc123",
		"event_type": "WON",
		"scanned_at": "2025-06-15T09:30:00Z",
		"dollar_amount": -100
	}`)

	_, err := parser.Parse(body)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestJSONEventParser_Parse_UnparseableTimestamp(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "abc123",
		"event_type": "WON",
		"scanned_at": "June 15th 2025"
	}`)

	_, err := parser.Parse(body)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scanned_at")
}

func TestJSONEventParser_Parse_MissingTimestampAllowed(t *testing.T) {
	parser := NewJSONEventParser()

	// A missing timestamp is a data-quality signal handled downstream, not a
	// malformed message.
	body := []byte(`{
		"event_id": "abc123",
		"event_type": "FOLLOW_UP",
		"project_name": "Beach 67th St"
	}`)

	event, err := parser.Parse(body)

	assert.NoError(t, err)
	assert.True(t, event.ScannedAt.IsZero())
}

func TestJSONEventParser_Parse_MissingProjectAndAssigneeAllowed(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "abc123",
		"event_type": "RFP_RECEIVED",
		"scanned_at": "2025-06-15T09:30:00Z"
	}`)

	event, err := parser.Parse(body)

	assert.NoError(t, err)
	assert.Empty(t, event.ProjectName)
	assert.Empty(t, event.Assignee)
}
