package coordination

import (
	"errors"
	"testing"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

func startedState(t *testing.T, eventType models.EventType) State {
	t.Helper()

	questions := QuestionsForEventType(eventType)
	s := NewState()
	s, _ = Apply(s, SetQuestions(questions))
	s, _ = Apply(s, SetCurrentQuestion(0))
	s.Session = &models.CoordinationSession{
		ID:         "test-session",
		EventCode:  "EVT-TEST",
		Answers:    []models.CoordinationAnswer{},
		TotalSteps: len(questions),
	}
	return s
}

func TestNavigationClampsAtBounds(t *testing.T) {
	s := startedState(t, models.EventCasamiento) // 5 questions

	// Previous at the first question stays at the first question.
	s, err := Apply(s, PreviousQuestion())
	if err != nil {
		t.Fatalf("PreviousQuestion: %v", err)
	}
	if s.CurrentQuestionIndex != 0 {
		t.Errorf("index after previous at start = %d, want 0", s.CurrentQuestionIndex)
	}

	// Walk far past the end; index must pin at the last question.
	for i := 0; i < 10; i++ {
		s, err = Apply(s, NextQuestion())
		if err != nil {
			t.Fatalf("NextQuestion: %v", err)
		}
	}
	if want := len(s.Questions) - 1; s.CurrentQuestionIndex != want {
		t.Errorf("index after overshoot = %d, want %d", s.CurrentQuestionIndex, want)
	}

	// Walk far past the start; index must pin at the first question.
	for i := 0; i < 10; i++ {
		s, err = Apply(s, PreviousQuestion())
		if err != nil {
			t.Fatalf("PreviousQuestion: %v", err)
		}
	}
	if s.CurrentQuestionIndex != 0 {
		t.Errorf("index after undershoot = %d, want 0", s.CurrentQuestionIndex)
	}
}

func TestNavigationWithNoQuestionsPinsAtZero(t *testing.T) {
	s := NewState()
	s, err := Apply(s, NextQuestion())
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if s.CurrentQuestionIndex != 0 {
		t.Errorf("index = %d, want 0", s.CurrentQuestionIndex)
	}
	s, err = Apply(s, PreviousQuestion())
	if err != nil {
		t.Fatalf("PreviousQuestion: %v", err)
	}
	if s.CurrentQuestionIndex != 0 {
		t.Errorf("index = %d, want 0", s.CurrentQuestionIndex)
	}
}

func TestAddAnswerKeepsOnePerQuestion(t *testing.T) {
	s := startedState(t, models.EventCasamiento)

	s, err := Apply(s, AddAnswer(models.CoordinationAnswer{QuestionID: "cancion_entrada", Value: "Perfect"}))
	if err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	s, err = Apply(s, AddAnswer(models.CoordinationAnswer{QuestionID: "cancion_vals", Value: "Vals de Strauss"}))
	if err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}

	// Answering the same question again replaces, never duplicates.
	s, err = Apply(s, AddAnswer(models.CoordinationAnswer{QuestionID: "cancion_entrada", Value: "Thinking Out Loud"}))
	if err != nil {
		t.Fatalf("AddAnswer replace: %v", err)
	}

	if got := len(s.Session.Answers); got != 2 {
		t.Fatalf("answer count = %d, want 2", got)
	}
	// Replacement keeps the original position.
	if s.Session.Answers[0].QuestionID != "cancion_entrada" {
		t.Errorf("answer[0] = %s, want cancion_entrada", s.Session.Answers[0].QuestionID)
	}
	if got := s.Session.Answers[0].Value; got != "Thinking Out Loud" {
		t.Errorf("answer[0] value = %v, want replaced value", got)
	}
	if s.Session.Answers[1].QuestionID != "cancion_vals" {
		t.Errorf("answer[1] = %s, want cancion_vals", s.Session.Answers[1].QuestionID)
	}
}

func TestUpdateAnswerIgnoresUnknownQuestion(t *testing.T) {
	s := startedState(t, models.EventOtro)
	s, err := Apply(s, UpdateAnswer(models.CoordinationAnswer{QuestionID: "nope", Value: "x"}))
	if err != nil {
		t.Fatalf("UpdateAnswer: %v", err)
	}
	if got := len(s.Session.Answers); got != 0 {
		t.Errorf("answer count = %d, want 0", got)
	}
}

func TestSessionTransitionsRequireSession(t *testing.T) {
	s := NewState()

	for _, action := range []Action{
		AddAnswer(models.CoordinationAnswer{QuestionID: "q", Value: "v"}),
		UpdateAnswer(models.CoordinationAnswer{QuestionID: "q", Value: "v"}),
		CompleteSession(),
	} {
		if _, err := Apply(s, action); !errors.Is(err, ErrNoSession) {
			t.Errorf("Apply(%s) err = %v, want ErrNoSession", action.Type, err)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := startedState(t, models.EventOtro)
	s, _ = Apply(s, AddAnswer(models.CoordinationAnswer{QuestionID: "descripcion_evento", Value: "original"}))

	if _, err := Apply(s, AddAnswer(models.CoordinationAnswer{QuestionID: "descripcion_evento", Value: "changed"})); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	if got := s.Session.Answers[0].Value; got != "original" {
		t.Errorf("input state mutated: answer value = %v", got)
	}
}

func TestCompleteAndReset(t *testing.T) {
	s := startedState(t, models.EventOtro)

	s, err := Apply(s, CompleteSession())
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if !s.Session.Completed {
		t.Error("session not marked completed")
	}
	if got, want := s.Session.CurrentStep, len(s.Questions); got != want {
		t.Errorf("CurrentStep = %d, want %d", got, want)
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %s, want %s", s.Phase(), PhaseCompleted)
	}

	s, err = Apply(s, ResetSession())
	if err != nil {
		t.Fatalf("ResetSession: %v", err)
	}
	if s.Session != nil || s.EventInfo != nil || len(s.Questions) != 0 {
		t.Error("reset did not return to the initial state")
	}
	if s.Phase() != PhaseNotStarted {
		t.Errorf("phase after reset = %s, want %s", s.Phase(), PhaseNotStarted)
	}
}

func TestProgress(t *testing.T) {
	s := startedState(t, models.EventCasamiento) // 5 questions

	p := s.Progress()
	if p.Current != 1 || p.Total != 5 || p.Percentage != 20 {
		t.Errorf("progress at start = %+v, want {1 5 20}", p)
	}

	for i := 0; i < 4; i++ {
		s, _ = Apply(s, NextQuestion())
	}
	p = s.Progress()
	if p.Current != 5 || p.Total != 5 || p.Percentage != 100 {
		t.Errorf("progress at end = %+v, want {5 5 100}", p)
	}
}

func TestProgressWithNoQuestions(t *testing.T) {
	p := NewState().Progress()
	if p.Current != 1 || p.Total != 0 || p.Percentage != 0 {
		t.Errorf("empty progress = %+v, want {1 0 0}", p)
	}
}
