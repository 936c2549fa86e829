package dto

import "time"

// TimelineStage is one human-readable entry in an application's history,
// reconstructed from the application's own fields and its payment records.
type TimelineStage struct {
	Stage       string    `json:"stage"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// TimelineResponse wraps the projected timeline for one application.
type TimelineResponse struct {
	ApplicationID string          `json:"applicationID"`
	Stages        []TimelineStage `json:"stages"`
}
