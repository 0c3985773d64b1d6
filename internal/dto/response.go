package dto

import "github.com/masterroofing/sales-insights-service/internal/domain"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"event_type is required"`
}

// PublishEventResponse represents a successful event ingestion response
type PublishEventResponse struct {
	EventID string `json:"event_id" example:"evt_1a2b3c4d5e6f"`
	Status  string `json:"status" example:"accepted"`
}

// PublishBulkEventsResponse represents a successful bulk event ingestion response
type PublishBulkEventsResponse struct {
	Accepted int      `json:"accepted" example:"5"`
	Rejected int      `json:"rejected" example:"0"`
	EventIDs []string `json:"event_ids,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// RefreshResponse summarizes one full analysis pass over the event snapshot
type RefreshResponse struct {
	Status    string `json:"status" example:"refreshed"`
	Events    int    `json:"events" example:"742"`
	Pairings  int    `json:"pairings" example:"58"`
	Actors    int    `json:"actors" example:"6"`
	Malformed int    `json:"malformed" example:"2"`
}

// ActorMetricsResponse carries the per-actor aggregates plus dashboard totals
type ActorMetricsResponse struct {
	Totals domain.Totals                  `json:"totals"`
	Actors map[string]domain.ActorMetrics `json:"actors"`
}

// PairingsResponse carries the derived RFP-to-proposal pairings
type PairingsResponse struct {
	Pairings []domain.Pairing `json:"pairings"`
}

// AskResponse carries the Query Responder answer
type AskResponse struct {
	Query string            `json:"query" example:"who has the best win rate?"`
	Text  string            `json:"text"`
	Chart *domain.ChartSpec `json:"chart,omitempty"`
}

// BoardResponse carries the bucketed task board
type BoardResponse struct {
	Board domain.Board `json:"board"`
}
