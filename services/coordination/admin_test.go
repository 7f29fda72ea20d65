package coordination

import (
	"context"
	"errors"
	"testing"

	eventRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/event"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type stubEventRepo struct {
	codes    map[string]models.EventInfo
	sessions map[string]models.CoordinationSession
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{
		codes:    make(map[string]models.EventInfo),
		sessions: make(map[string]models.CoordinationSession),
	}
}

func (s *stubEventRepo) GetByCode(_ context.Context, code string) (*models.EventInfo, error) {
	info, ok := s.codes[code]
	if !ok {
		return nil, eventRepo.ErrCodeNotFound
	}
	return &info, nil
}

func (s *stubEventRepo) CreateCode(_ context.Context, info models.EventInfo) error {
	if _, exists := s.codes[info.Code]; exists {
		return errors.New("code already exists")
	}
	s.codes[info.Code] = info
	return nil
}

func (s *stubEventRepo) SaveSession(_ context.Context, session models.CoordinationSession) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubEventRepo) GetSessionByEventCode(_ context.Context, code string) (*models.CoordinationSession, error) {
	for _, session := range s.sessions {
		if session.EventCode == code {
			out := session
			return &out, nil
		}
	}
	return nil, errors.New("coordination session not found")
}

func (s *stubEventRepo) ListSessions(_ context.Context) ([]models.CoordinationSession, error) {
	out := make([]models.CoordinationSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session)
	}
	return out, nil
}

func TestCreateEventCode(t *testing.T) {
	repo := newStubEventRepo()
	svc := &DefaultCoordinationService{
		Verifier: &RepoVerifier{Repo: repo},
		Store:    NewMemoryStateStore(),
		Sessions: repo,
	}
	ctx := context.Background()

	info := models.EventInfo{
		Code:       "EVT-2026-010",
		ClientName: "Lucía Fernández",
		EventType:  models.EventXV,
		EventDate:  "2026-11-21",
	}
	if err := svc.CreateEventCode(ctx, info); err != nil {
		t.Fatalf("CreateEventCode: %v", err)
	}

	// The issued code must verify through the normal wizard entry point.
	_, state, err := svc.VerifyEventCode(ctx, "EVT-2026-010")
	if err != nil {
		t.Fatalf("VerifyEventCode after issue: %v", err)
	}
	if state.EventInfo.ClientName != "Lucía Fernández" {
		t.Errorf("client = %s, want Lucía Fernández", state.EventInfo.ClientName)
	}
}

func TestCreateEventCodeValidation(t *testing.T) {
	repo := newStubEventRepo()
	svc := &DefaultCoordinationService{Store: NewMemoryStateStore(), Sessions: repo}
	ctx := context.Background()

	if err := svc.CreateEventCode(ctx, models.EventInfo{ClientName: "x", EventType: models.EventOtro}); err == nil {
		t.Error("expected an error for a missing code")
	}
	if err := svc.CreateEventCode(ctx, models.EventInfo{Code: "C-1", ClientName: "x", EventType: "fiesta_pirata"}); err == nil {
		t.Error("expected an error for an event type without questions")
	}
	if got := len(repo.codes); got != 0 {
		t.Errorf("codes stored = %d, want 0", got)
	}

	bare := &DefaultCoordinationService{Store: NewMemoryStateStore()}
	if err := bare.CreateEventCode(ctx, models.EventInfo{Code: "C-1", ClientName: "x", EventType: models.EventOtro}); !errors.Is(err, ErrArchiveUnavailable) {
		t.Errorf("err = %v, want ErrArchiveUnavailable", err)
	}
}

func TestCompletedSessionReachesArchive(t *testing.T) {
	repo := newStubEventRepo()
	svc := &DefaultCoordinationService{
		Verifier: &RepoVerifier{Repo: repo},
		Store:    NewMemoryStateStore(),
		Sessions: repo,
	}
	ctx := context.Background()

	info := models.EventInfo{
		Code:       "EVT-2026-011",
		ClientName: "Estudio Rivera",
		EventType:  models.EventOtro,
		EventDate:  "2026-10-30",
	}
	if err := svc.CreateEventCode(ctx, info); err != nil {
		t.Fatalf("CreateEventCode: %v", err)
	}

	handle, _, err := svc.VerifyEventCode(ctx, "EVT-2026-011")
	if err != nil {
		t.Fatalf("VerifyEventCode: %v", err)
	}
	if _, err := svc.StartCoordination(ctx, handle); err != nil {
		t.Fatalf("StartCoordination: %v", err)
	}
	if _, err := svc.AnswerQuestion(ctx, handle, "descripcion_evento", "Aniversario"); err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	if _, err := svc.CompleteSession(ctx, handle); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("archived sessions = %d, want 1", len(sessions))
	}
	if !sessions[0].Completed {
		t.Error("archived session not marked completed")
	}

	archived, err := svc.SessionForEvent(ctx, "EVT-2026-011")
	if err != nil {
		t.Fatalf("SessionForEvent: %v", err)
	}
	if archived.ID != handle {
		t.Errorf("archived session id = %s, want %s", archived.ID, handle)
	}
	if len(archived.Answers) != 1 {
		t.Errorf("archived answers = %d, want 1", len(archived.Answers))
	}
}
