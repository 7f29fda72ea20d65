package models

import "time"

// PlannedEventStatus drives the calendar day coloring.
type PlannedEventStatus string

const (
	EventStatusUrgente    PlannedEventStatus = "urgente"    // red
	EventStatusPendiente  PlannedEventStatus = "pendiente"  // yellow
	EventStatusConfirmado PlannedEventStatus = "confirmado" // green
)

// PlannedEvent is a dated entry shown on the month calendar.
type PlannedEvent struct {
	ID        string             `db:"id" json:"id"`
	Title     string             `db:"title" json:"title"`
	EventDate string             `db:"event_date" json:"eventDate"` // ISO yyyy-mm-dd
	Status    PlannedEventStatus `db:"status" json:"status"`
	Notes     string             `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `db:"updated_at" json:"updatedAt"`
}
