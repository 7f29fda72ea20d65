package coordination

import (
	"errors"
	"time"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// ErrNoSession is returned for transitions that need an active session.
var ErrNoSession = errors.New("no active coordination session")

// ActionType enumerates the wizard transitions.
type ActionType string

const (
	ActionSetLoading         ActionType = "set_loading"
	ActionSetError           ActionType = "set_error"
	ActionSetEventInfo       ActionType = "set_event_info"
	ActionSetQuestions       ActionType = "set_questions"
	ActionSetCurrentQuestion ActionType = "set_current_question"
	ActionAddAnswer          ActionType = "add_answer"
	ActionUpdateAnswer       ActionType = "update_answer"
	ActionNextQuestion       ActionType = "next_question"
	ActionPreviousQuestion   ActionType = "previous_question"
	ActionCompleteSession    ActionType = "complete_session"
	ActionResetSession       ActionType = "reset_session"
)

// Action is one reducer input. Only the payload field matching the type is
// read.
type Action struct {
	Type      ActionType
	Flag      bool
	Message   string
	Event     *models.EventInfo
	Questions []models.CoordinationQuestion
	Index     int
	Answer    models.CoordinationAnswer
}

func SetLoading(on bool) Action    { return Action{Type: ActionSetLoading, Flag: on} }
func SetError(msg string) Action   { return Action{Type: ActionSetError, Message: msg} }
func NextQuestion() Action         { return Action{Type: ActionNextQuestion} }
func PreviousQuestion() Action     { return Action{Type: ActionPreviousQuestion} }
func CompleteSession() Action      { return Action{Type: ActionCompleteSession} }
func ResetSession() Action         { return Action{Type: ActionResetSession} }
func SetCurrentQuestion(i int) Action {
	return Action{Type: ActionSetCurrentQuestion, Index: i}
}
func SetEventInfo(info models.EventInfo) Action {
	return Action{Type: ActionSetEventInfo, Event: &info}
}
func SetQuestions(qs []models.CoordinationQuestion) Action {
	return Action{Type: ActionSetQuestions, Questions: qs}
}
func AddAnswer(ans models.CoordinationAnswer) Action {
	return Action{Type: ActionAddAnswer, Answer: ans}
}
func UpdateAnswer(ans models.CoordinationAnswer) Action {
	return Action{Type: ActionUpdateAnswer, Answer: ans}
}

// Apply computes the next state from one action. It never mutates its input;
// the answers slice and session are copied before any change. Transitions
// that need a session return ErrNoSession with the state unchanged.
func Apply(s State, a Action) (State, error) {
	switch a.Type {
	case ActionSetLoading:
		s.Loading = a.Flag
		return s, nil

	case ActionSetError:
		s.Err = a.Message
		return s, nil

	case ActionSetEventInfo:
		s.EventInfo = a.Event
		return s, nil

	case ActionSetQuestions:
		s.Questions = a.Questions
		return s, nil

	case ActionSetCurrentQuestion:
		// No validation here; callers own index sanity.
		s.CurrentQuestionIndex = a.Index
		return s, nil

	case ActionAddAnswer:
		if s.Session == nil {
			return s, ErrNoSession
		}
		session := cloneSession(*s.Session)
		replaced := false
		for i := range session.Answers {
			if session.Answers[i].QuestionID == a.Answer.QuestionID {
				// One answer per question: replace in place, order stays.
				session.Answers[i] = a.Answer
				replaced = true
				break
			}
		}
		if !replaced {
			session.Answers = append(session.Answers, a.Answer)
		}
		session.UpdatedAt = time.Now()
		s.Session = &session
		return s, nil

	case ActionUpdateAnswer:
		if s.Session == nil {
			return s, ErrNoSession
		}
		session := cloneSession(*s.Session)
		for i := range session.Answers {
			if session.Answers[i].QuestionID == a.Answer.QuestionID {
				session.Answers[i] = a.Answer
				session.UpdatedAt = time.Now()
				break
			}
		}
		s.Session = &session
		return s, nil

	case ActionNextQuestion:
		s.CurrentQuestionIndex = clampIndex(s.CurrentQuestionIndex+1, len(s.Questions))
		return s, nil

	case ActionPreviousQuestion:
		s.CurrentQuestionIndex = clampIndex(s.CurrentQuestionIndex-1, len(s.Questions))
		return s, nil

	case ActionCompleteSession:
		if s.Session == nil {
			return s, ErrNoSession
		}
		session := cloneSession(*s.Session)
		session.Completed = true
		session.CurrentStep = len(s.Questions)
		session.UpdatedAt = time.Now()
		s.Session = &session
		return s, nil

	case ActionResetSession:
		return NewState(), nil

	default:
		return s, errors.New("unknown action type")
	}
}

// clampIndex keeps an index inside [0, n-1]. With no questions the index
// pins at 0.
func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func cloneSession(s models.CoordinationSession) models.CoordinationSession {
	answers := make([]models.CoordinationAnswer, len(s.Answers))
	copy(answers, s.Answers)
	s.Answers = answers
	return s
}
