package domain

import (
	"fmt"
	"time"
)

// EventType is the closed set of sales event types the engine understands.
type EventType string

const (
	EventRFPReceived  EventType = "RFP_RECEIVED"
	EventProposalSent EventType = "PROPOSAL_SENT"
	EventWon          EventType = "WON"
	EventLost         EventType = "LOST"
	EventFollowUp     EventType = "FOLLOW_UP"
	EventGCResponse   EventType = "GC_RESPONSE"
)

// UnknownProject is the sentinel bucket for events without a project name.
// Events grouped under it still count toward per-actor totals but are never
// eligible for RFP/proposal pairing.
const UnknownProject = "unknown"

// UnknownActor is the attribution used when an event carries no assignee.
const UnknownActor = "Unknown"

// ParseEventType validates a raw event type string against the closed enumeration.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventRFPReceived, EventProposalSent, EventWon, EventLost, EventFollowUp, EventGCResponse:
		return EventType(s), nil
	}
	return "", fmt.Errorf("unknown event_type: %q", s)
}

// Event represents an immutable sales event stored in ClickHouse.
// The insights engine never mutates an Event, it only derives read-only
// structures from a snapshot list.
type Event struct {
	EventID      string    `ch:"event_id" json:"event_id"`
	EventType    EventType `ch:"event_type" json:"event_type"`
	ProjectName  string    `ch:"project_name" json:"project_name,omitempty"`
	Assignee     string    `ch:"assignee" json:"assignee,omitempty"`
	ScannedAt    time.Time `ch:"scanned_at" json:"scanned_at"`
	DollarAmount *float64  `ch:"dollar_amount" json:"dollar_amount,omitempty"`
	ProcessedAt  time.Time `ch:"processed_at" json:"-"`
	Version      uint64    `ch:"version" json:"-"`
}

// Validate performs the fail-fast ingestion checks. Data-quality issues that
// only degrade aggregates (missing project, missing assignee, missing
// timestamp) are not errors here; they are handled downstream.
func (e *Event) Validate() error {
	if _, err := ParseEventType(string(e.EventType)); err != nil {
		return err
	}
	if e.DollarAmount != nil && *e.DollarAmount < 0 {
		return fmt.Errorf("dollar_amount must be non-negative, got %f", *e.DollarAmount)
	}
	return nil
}

// Actor returns the actor an event is attributed to, defaulting to UnknownActor.
func (e *Event) Actor() string {
	if e.Assignee == "" {
		return UnknownActor
	}
	return e.Assignee
}
