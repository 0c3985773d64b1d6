package dto

import "time"

// PublishEventRequest represents a publish sales event request
type PublishEventRequest struct {
	EventType    string    `json:"event_type" binding:"required" example:"RFP_RECEIVED"`
	ProjectName  string    `json:"project_name" example:"Beach 67th St"`
	Assignee     string    `json:"assignee" example:"John Mitchell"`
	ScannedAt    time.Time `json:"scanned_at" binding:"required" example:"2025-06-15T09:30:00Z"`
	DollarAmount *float64  `json:"dollar_amount,omitempty" example:"50000"`
}

// PublishEventsBulkRequest represents a publish bulk event request
type PublishEventsBulkRequest struct {
	Events []PublishEventRequest `json:"events" binding:"required,min=1,max=1000,dive"`
}

// AskRequest represents a free-text analytics question
type AskRequest struct {
	Query string `form:"q" binding:"required" example:"who has the best win rate?"`
}
