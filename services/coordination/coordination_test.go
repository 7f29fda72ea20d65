package coordination

import (
	"context"
	"testing"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

func newTestService() *DefaultCoordinationService {
	return &DefaultCoordinationService{
		Verifier: NewStaticVerifier(),
		Store:    NewMemoryStateStore(),
	}
}

func TestVerifyEventCode(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	handle, state, err := svc.VerifyEventCode(ctx, "EVT-2024-001")
	if err != nil {
		t.Fatalf("VerifyEventCode: %v", err)
	}
	if handle == "" {
		t.Fatal("expected a session handle")
	}
	if state.EventInfo == nil {
		t.Fatal("expected event info on the state")
	}
	if state.EventInfo.ClientName != "María González" {
		t.Errorf("client = %s, want María González", state.EventInfo.ClientName)
	}
	if state.EventInfo.EventType != models.EventCasamiento {
		t.Errorf("event type = %s, want %s", state.EventInfo.EventType, models.EventCasamiento)
	}
	if state.Loading {
		t.Error("loading flag left on after verification")
	}
	if state.Phase() != PhaseAwaitingStart {
		t.Errorf("phase = %s, want %s", state.Phase(), PhaseAwaitingStart)
	}
}

func TestVerifyEventCodeUnknown(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	handle, state, err := svc.VerifyEventCode(ctx, "EVT-9999-999")
	if err == nil {
		t.Fatal("expected an error for an unknown code")
	}
	if handle != "" {
		t.Errorf("handle = %q, want empty", handle)
	}
	if state.EventInfo != nil {
		t.Error("expected no event info on failure")
	}
	if state.Err != VerifyErrorMessage {
		t.Errorf("state error = %q, want %q", state.Err, VerifyErrorMessage)
	}
	if state.Loading {
		t.Error("loading flag left on after failed verification")
	}
}

func TestStartCoordination(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	handle, _, err := svc.VerifyEventCode(ctx, "EVT-2024-001")
	if err != nil {
		t.Fatalf("VerifyEventCode: %v", err)
	}

	state, err := svc.StartCoordination(ctx, handle)
	if err != nil {
		t.Fatalf("StartCoordination: %v", err)
	}
	if state.Session == nil {
		t.Fatal("expected a session")
	}
	if state.Session.TotalSteps != 5 {
		t.Errorf("TotalSteps = %d, want 5", state.Session.TotalSteps)
	}
	if state.Session.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", state.Session.CurrentStep)
	}
	if state.CurrentQuestionIndex != 0 {
		t.Errorf("question index = %d, want 0", state.CurrentQuestionIndex)
	}
	if q := state.CurrentQuestion(); q == nil || q.ID != "cancion_entrada" {
		t.Errorf("current question = %v, want cancion_entrada", q)
	}
}

func TestStartCoordinationWithoutVerification(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// A handle that skipped verification has no event info.
	if err := svc.Store.Save(ctx, "bare-handle", NewState()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	state, err := svc.StartCoordination(ctx, "bare-handle")
	if err == nil {
		t.Fatal("expected an error")
	}
	if state.Err != StartErrorMessage {
		t.Errorf("state error = %q, want %q", state.Err, StartErrorMessage)
	}
}

func TestFullQuestionnaireFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// EVT-2024-003 is an "Otro" event with two questions.
	handle, _, err := svc.VerifyEventCode(ctx, "EVT-2024-003")
	if err != nil {
		t.Fatalf("VerifyEventCode: %v", err)
	}
	if _, err := svc.StartCoordination(ctx, handle); err != nil {
		t.Fatalf("StartCoordination: %v", err)
	}

	if _, err := svc.AnswerQuestion(ctx, handle, "descripcion_evento", "Aniversario del estudio"); err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	state, err := svc.NextQuestion(ctx, handle)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if state.Session.CurrentStep != 2 {
		t.Errorf("CurrentStep = %d, want 2", state.Session.CurrentStep)
	}
	if _, err := svc.AnswerQuestion(ctx, handle, "momentos_clave", "Brindis a las 21"); err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}

	state, err = svc.CompleteSession(ctx, handle)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if !state.Session.Completed {
		t.Error("session not completed")
	}
	if got := len(state.Session.Answers); got != 2 {
		t.Errorf("answer count = %d, want 2", got)
	}
	p := state.Progress()
	if p.Current != 2 || p.Total != 2 || p.Percentage != 100 {
		t.Errorf("progress = %+v, want {2 2 100}", p)
	}
}

func TestAnswerQuestionReplacesPrevious(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	handle, _, err := svc.VerifyEventCode(ctx, "EVT-2024-003")
	if err != nil {
		t.Fatalf("VerifyEventCode: %v", err)
	}
	if _, err := svc.StartCoordination(ctx, handle); err != nil {
		t.Fatalf("StartCoordination: %v", err)
	}

	if _, err := svc.AnswerQuestion(ctx, handle, "descripcion_evento", "primera"); err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	state, err := svc.AnswerQuestion(ctx, handle, "descripcion_evento", "segunda")
	if err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	if got := len(state.Session.Answers); got != 1 {
		t.Fatalf("answer count = %d, want 1", got)
	}
	if got := state.Session.Answers[0].Value; got != "segunda" {
		t.Errorf("answer value = %v, want segunda", got)
	}
}

func TestResetSessionDiscardsHandle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	handle, _, err := svc.VerifyEventCode(ctx, "EVT-2024-002")
	if err != nil {
		t.Fatalf("VerifyEventCode: %v", err)
	}
	if err := svc.ResetSession(ctx, handle); err != nil {
		t.Fatalf("ResetSession: %v", err)
	}
	if _, err := svc.Snapshot(ctx, handle); err == nil {
		t.Error("expected the handle to be gone after reset")
	}
}
