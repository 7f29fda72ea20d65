package coordination

import (
	"context"
	"errors"
	"fmt"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// ErrArchiveUnavailable is returned by admin operations when no session
// archive is configured.
var ErrArchiveUnavailable = errors.New("session archive not configured")

// CreateEventCode issues a new event code. The event type must have an
// authored question set, otherwise the questionnaire would start empty.
func (s *DefaultCoordinationService) CreateEventCode(ctx context.Context, info models.EventInfo) error {
	if s.Sessions == nil {
		return ErrArchiveUnavailable
	}
	if info.Code == "" || info.ClientName == "" {
		return errors.New("event code and client name are required")
	}
	if QuestionsForEventType(info.EventType) == nil {
		return fmt.Errorf("unknown event type %q", info.EventType)
	}
	return s.Sessions.CreateCode(ctx, info)
}

// SessionForEvent returns the latest archived questionnaire for an event code.
func (s *DefaultCoordinationService) SessionForEvent(ctx context.Context, code string) (*models.CoordinationSession, error) {
	if s.Sessions == nil {
		return nil, ErrArchiveUnavailable
	}
	return s.Sessions.GetSessionByEventCode(ctx, code)
}

// ListSessions returns every archived questionnaire, newest first.
func (s *DefaultCoordinationService) ListSessions(ctx context.Context) ([]models.CoordinationSession, error) {
	if s.Sessions == nil {
		return nil, ErrArchiveUnavailable
	}
	return s.Sessions.ListSessions(ctx)
}
