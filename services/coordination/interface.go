package coordination

import (
	"context"

	eventRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/event"
	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/notification"
)

// CoordinationService drives the questionnaire wizard for one session handle:
// verify -> start -> answer/navigate -> complete. State lives in the
// StateStore; every method loads, transitions and saves.
type CoordinationService interface {
	// VerifyEventCode resolves a code through the verification collaborator.
	// On success it creates a new session handle holding the event identity.
	VerifyEventCode(ctx context.Context, code string) (handle string, state State, err error)
	StartCoordination(ctx context.Context, handle string) (State, error)
	AnswerQuestion(ctx context.Context, handle, questionID string, value any) (State, error)
	NextQuestion(ctx context.Context, handle string) (State, error)
	PreviousQuestion(ctx context.Context, handle string) (State, error)
	CompleteSession(ctx context.Context, handle string) (State, error)
	ResetSession(ctx context.Context, handle string) error
	Snapshot(ctx context.Context, handle string) (State, error)

	// Admin side: event codes are issued here, and archived questionnaires
	// reviewed here.
	CreateEventCode(ctx context.Context, info models.EventInfo) error
	SessionForEvent(ctx context.Context, code string) (*models.CoordinationSession, error)
	ListSessions(ctx context.Context) ([]models.CoordinationSession, error)
}

// DefaultCoordinationService is the production implementation.
type DefaultCoordinationService struct {
	Verifier EventVerifier
	Store    StateStore
	// Sessions persists completed questionnaires; optional.
	Sessions eventRepo.EventRepository
	// Notifier announces completions; optional, fire-and-forget.
	Notifier notification.NotificationService
}
