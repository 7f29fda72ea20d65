package coordination

import (
	"math"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// Phase is the session-level position in the wizard.
type Phase string

const (
	PhaseNotStarted    Phase = "not_started"
	PhaseAwaitingStart Phase = "awaiting_start"
	PhaseInProgress    Phase = "in_progress"
	PhaseCompleted     Phase = "completed"
)

// State is the full wizard state for one session handle. It is a plain value;
// all transitions go through Apply.
type State struct {
	Session              *models.CoordinationSession   `json:"session"`
	EventInfo            *models.EventInfo             `json:"eventInfo"`
	CurrentQuestionIndex int                           `json:"currentQuestionIndex"`
	Questions            []models.CoordinationQuestion `json:"questions"`
	Loading              bool                          `json:"loading"`
	Err                  string                        `json:"error,omitempty"`
}

// NewState returns the initial (empty) wizard state.
func NewState() State {
	return State{}
}

// Phase derives the machine position from the state fields.
func (s State) Phase() Phase {
	switch {
	case s.Session != nil && s.Session.Completed:
		return PhaseCompleted
	case s.Session != nil:
		return PhaseInProgress
	case s.EventInfo != nil:
		return PhaseAwaitingStart
	default:
		return PhaseNotStarted
	}
}

// CurrentQuestion returns the question at the current index, or nil when the
// list is empty or the index is out of range.
func (s State) CurrentQuestion() *models.CoordinationQuestion {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return nil
	}
	q := s.Questions[s.CurrentQuestionIndex]
	return &q
}

// Progress reports wizard completion.
type Progress struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Progress returns the 1-based position, total question count and rounded
// percentage. An empty question list reports percentage 0.
func (s State) Progress() Progress {
	current := s.CurrentQuestionIndex + 1
	total := len(s.Questions)
	if total == 0 {
		return Progress{Current: current, Total: 0, Percentage: 0}
	}
	pct := int(math.Round(float64(current) / float64(total) * 100))
	return Progress{Current: current, Total: total, Percentage: pct}
}

// AnswerFor returns the stored answer for a question id, or nil.
func (s State) AnswerFor(questionID string) *models.CoordinationAnswer {
	if s.Session == nil {
		return nil
	}
	for i := range s.Session.Answers {
		if s.Session.Answers[i].QuestionID == questionID {
			return &s.Session.Answers[i]
		}
	}
	return nil
}
