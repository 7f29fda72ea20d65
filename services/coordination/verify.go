package coordination

import (
	"context"
	"errors"
	"fmt"

	eventRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/event"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// ErrCodeNotFound is returned for unknown event codes.
var ErrCodeNotFound = errors.New("event code not found")

// EventVerifier resolves an event code to its event identity. It is the
// external verification collaborator; only this contract matters here.
type EventVerifier interface {
	VerifyEventCode(ctx context.Context, code string) (*models.EventInfo, error)
}

// RepoVerifier verifies codes against the event_codes table.
type RepoVerifier struct {
	Repo eventRepo.EventRepository
}

func (v *RepoVerifier) VerifyEventCode(ctx context.Context, code string) (*models.EventInfo, error) {
	info, err := v.Repo.GetByCode(ctx, code)
	if errors.Is(err, eventRepo.ErrCodeNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCodeNotFound, code)
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// StaticVerifier resolves codes from a fixed in-memory table. Used by tests
// and demo setups without a database.
type StaticVerifier struct {
	Codes map[string]models.EventInfo
}

// NewStaticVerifier returns a verifier seeded with the demo event codes.
func NewStaticVerifier() *StaticVerifier {
	return &StaticVerifier{Codes: map[string]models.EventInfo{
		"EVT-2024-001": {
			Code:       "EVT-2024-001",
			ClientName: "María González",
			EventType:  models.EventCasamiento,
			EventDate:  "2024-12-15",
			EventTime:  "20:00",
			GuestCount: 150,
			Venue:      "Salón Los Álamos",
		},
		"EVT-2024-002": {
			Code:       "EVT-2024-002",
			ClientName: "Carlos Pereira",
			EventType:  models.EventCumpleanos,
			EventDate:  "2024-11-08",
			EventTime:  "21:00",
			GuestCount: 80,
			Venue:      "Quinta El Ombú",
		},
		"EVT-2024-003": {
			Code:       "EVT-2024-003",
			ClientName: "Estudio Rivera",
			EventType:  models.EventOtro,
			EventDate:  "2024-10-30",
			EventTime:  "19:00",
			GuestCount: 40,
			Venue:      "Oficinas centrales",
		},
	}}
}

func (v *StaticVerifier) VerifyEventCode(_ context.Context, code string) (*models.EventInfo, error) {
	info, ok := v.Codes[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCodeNotFound, code)
	}
	return &info, nil
}
