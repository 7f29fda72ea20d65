package coordination

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// VerifyErrorMessage is the generic client-facing message for any
// verification failure.
const VerifyErrorMessage = "Código de evento inválido o no encontrado"

// StartErrorMessage is the generic client-facing message when a session
// cannot be started.
const StartErrorMessage = "No pudimos iniciar la coordinación, intentá de nuevo"

// ErrNotVerified is returned when StartCoordination runs before a successful
// verification.
var ErrNotVerified = errors.New("session has no verified event")

// VerifyEventCode delegates to the verification collaborator. The loading
// flag is toggled on both paths. On success a fresh handle is stored with the
// event identity; on failure no handle is created and the returned state
// carries the generic error message.
func (s *DefaultCoordinationService) VerifyEventCode(ctx context.Context, code string) (string, State, error) {
	logger := utils.GetLogger()

	state := NewState()
	state, _ = Apply(state, SetLoading(true))

	info, err := s.Verifier.VerifyEventCode(ctx, code)
	state, _ = Apply(state, SetLoading(false))
	if err != nil {
		logger.Warn("event code verification failed", zap.String("code", code), zap.Error(err))
		state, _ = Apply(state, SetError(VerifyErrorMessage))
		return "", state, err
	}

	state, _ = Apply(state, SetEventInfo(*info))

	handle := uuid.New().String()
	if err := s.Store.Save(ctx, handle, state); err != nil {
		return "", State{}, fmt.Errorf("failed to persist verified session: %w", err)
	}
	logger.Debug("event code verified",
		zap.String("code", code),
		zap.String("handle", handle),
		zap.String("eventType", string(info.EventType)))
	return handle, state, nil
}

// StartCoordination resolves the question set for the verified event and
// creates the session aggregate. On failure the stored state keeps its event
// info and records the generic error.
func (s *DefaultCoordinationService) StartCoordination(ctx context.Context, handle string) (State, error) {
	state, err := s.Store.Load(ctx, handle)
	if err != nil {
		return State{}, err
	}
	if state.EventInfo == nil {
		state, _ = Apply(state, SetError(StartErrorMessage))
		_ = s.Store.Save(ctx, handle, state)
		return state, ErrNotVerified
	}

	questions := QuestionsForEventType(state.EventInfo.EventType)
	now := time.Now()
	session := models.CoordinationSession{
		ID:          handle,
		EventCode:   state.EventInfo.Code,
		EventInfo:   *state.EventInfo,
		Answers:     []models.CoordinationAnswer{},
		CurrentStep: 1,
		TotalSteps:  len(questions),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	state, _ = Apply(state, SetQuestions(questions))
	state, _ = Apply(state, SetCurrentQuestion(0))
	state, _ = Apply(state, SetError(""))
	state.Session = &session

	if err := s.Store.Save(ctx, handle, state); err != nil {
		return State{}, fmt.Errorf("failed to persist started session: %w", err)
	}
	return state, nil
}

// AnswerQuestion records an answer, replacing any previous answer for the
// same question. The update-or-add split mirrors the wizard's API; the
// reducer guarantees uniqueness either way.
func (s *DefaultCoordinationService) AnswerQuestion(ctx context.Context, handle, questionID string, value any) (State, error) {
	state, err := s.Store.Load(ctx, handle)
	if err != nil {
		return State{}, err
	}

	answer := models.CoordinationAnswer{QuestionID: questionID, Value: value}
	action := AddAnswer(answer)
	if state.AnswerFor(questionID) != nil {
		action = UpdateAnswer(answer)
	}

	state, err = Apply(state, action)
	if err != nil {
		return state, err
	}
	if err := s.Store.Save(ctx, handle, state); err != nil {
		return State{}, fmt.Errorf("failed to persist answer: %w", err)
	}
	return state, nil
}

// NextQuestion advances the wizard one step, clamped at the last question.
func (s *DefaultCoordinationService) NextQuestion(ctx context.Context, handle string) (State, error) {
	return s.navigate(ctx, handle, NextQuestion())
}

// PreviousQuestion moves the wizard one step back, clamped at the first
// question.
func (s *DefaultCoordinationService) PreviousQuestion(ctx context.Context, handle string) (State, error) {
	return s.navigate(ctx, handle, PreviousQuestion())
}

func (s *DefaultCoordinationService) navigate(ctx context.Context, handle string, action Action) (State, error) {
	state, err := s.Store.Load(ctx, handle)
	if err != nil {
		return State{}, err
	}
	state, err = Apply(state, action)
	if err != nil {
		return state, err
	}
	if state.Session != nil {
		session := cloneSession(*state.Session)
		session.CurrentStep = state.CurrentQuestionIndex + 1
		state.Session = &session
	}
	if err := s.Store.Save(ctx, handle, state); err != nil {
		return State{}, fmt.Errorf("failed to persist navigation: %w", err)
	}
	return state, nil
}

// CompleteSession marks the session finished, persists the snapshot and
// fires a completion notification. Persistence and notification failures are
// logged, never surfaced.
func (s *DefaultCoordinationService) CompleteSession(ctx context.Context, handle string) (State, error) {
	logger := utils.GetLogger()

	state, err := s.Store.Load(ctx, handle)
	if err != nil {
		return State{}, err
	}
	state, err = Apply(state, CompleteSession())
	if err != nil {
		return state, err
	}
	if err := s.Store.Save(ctx, handle, state); err != nil {
		return State{}, fmt.Errorf("failed to persist completed session: %w", err)
	}

	if s.Sessions != nil {
		if err := s.Sessions.SaveSession(ctx, *state.Session); err != nil {
			logger.Error("failed to archive coordination session",
				zap.String("handle", handle), zap.Error(err))
		}
	}
	if s.Notifier != nil {
		s.Notifier.Send(ctx, "Coordinación completada",
			fmt.Sprintf("%s (%s) completó el cuestionario del evento %s",
				state.Session.EventInfo.ClientName,
				state.Session.EventInfo.EventType,
				state.Session.EventCode))
	}
	return state, nil
}

// ResetSession discards the session handle entirely.
func (s *DefaultCoordinationService) ResetSession(ctx context.Context, handle string) error {
	return s.Store.Delete(ctx, handle)
}

// Snapshot returns the current state without transitioning it.
func (s *DefaultCoordinationService) Snapshot(ctx context.Context, handle string) (State, error) {
	return s.Store.Load(ctx, handle)
}
