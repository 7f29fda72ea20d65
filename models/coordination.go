package models

import "time"

// EventType classifies a coordination target and selects its question set.
type EventType string

const (
	EventCasamiento  EventType = "Casamiento"
	EventCumpleanos  EventType = "Cumpleaños"
	EventCorporativo EventType = "Corporativo"
	EventXV          EventType = "XV"
	EventGraduacion  EventType = "Graduación"
	EventOtro        EventType = "Otro"
)

// QuestionType determines the shape of the expected answer value.
type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionSelect   QuestionType = "select"
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionNumber   QuestionType = "number"
	QuestionDate     QuestionType = "date"
	QuestionTime     QuestionType = "time"
)

// EventInfo is the resolved identity of one external event. It is created by
// the verification collaborator and immutable for the life of a session.
type EventInfo struct {
	Code       string    `db:"code" json:"code"`
	ClientName string    `db:"client_name" json:"clientName"`
	EventType  EventType `db:"event_type" json:"eventType"`
	EventDate  string    `db:"event_date" json:"eventDate"`
	EventTime  string    `db:"event_time" json:"eventTime"`
	GuestCount int       `db:"guest_count" json:"guestCount"`
	Venue      string    `db:"venue" json:"venue"`
}

// CoordinationQuestion is a static prompt definition. Order defines display
// sequence and also encodes question dependencies, so it is never re-sorted.
type CoordinationQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
	Order    int          `json:"order"`
	Category string       `json:"category"`
}

// CoordinationAnswer pairs a question with its value. The value is a string,
// a list of strings or a number depending on the question type.
type CoordinationAnswer struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"value"`
}

// CoordinationSession aggregates one event with its collected answers.
// At most one answer per question id is ever held.
type CoordinationSession struct {
	ID          string               `json:"id"`
	EventCode   string               `json:"eventCode"`
	EventInfo   EventInfo            `json:"eventInfo"`
	Answers     []CoordinationAnswer `json:"answers"`
	CurrentStep int                  `json:"currentStep"`
	TotalSteps  int                  `json:"totalSteps"`
	Completed   bool                 `json:"completed"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
