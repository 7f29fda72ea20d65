package eventRepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// ErrCodeNotFound is returned when an event code does not exist.
var ErrCodeNotFound = errors.New("event code not found")

type EventRepository interface {
	GetByCode(ctx context.Context, code string) (*models.EventInfo, error)
	CreateCode(ctx context.Context, info models.EventInfo) error

	// SaveSession upserts a coordination session snapshot.
	SaveSession(ctx context.Context, session models.CoordinationSession) error
	GetSessionByEventCode(ctx context.Context, code string) (*models.CoordinationSession, error)
	ListSessions(ctx context.Context) ([]models.CoordinationSession, error)
}

type postgresEventRepo struct {
	db *sql.DB
}

func NewPostgresEventRepo() EventRepository {
	return &postgresEventRepo{db: database.DB}
}
