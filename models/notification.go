package models

// ReminderPayload is the asynq task payload for a scheduled reminder push.
type ReminderPayload struct {
	RefID    string `json:"refId"` // crop task or planned event id
	Kind     string `json:"kind"`  // "task" | "event"
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}
