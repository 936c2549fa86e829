package services

import (
	"context"

	"github.com/janseva/benefits_portal_app/internal/dto"
)

// TimelineSvcFacade reconstructs a human-readable history for one
// application from its own timestamps and its payment records. Read-only.
type TimelineSvcFacade interface {
	// ProjectTimeline builds the ordered stage list for an application.
	ProjectTimeline(ctx context.Context, applicationID string) (*dto.TimelineResponse, error)
}
