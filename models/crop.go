package models

import "time"

// CropPhase tracks where a crop sits in its grow cycle.
type CropPhase string

const (
	PhaseGerminacion CropPhase = "germinacion"
	PhaseVegetativo  CropPhase = "vegetativo"
	PhaseFloracion   CropPhase = "floracion"
	PhaseSecado      CropPhase = "secado"
	PhaseCosechado   CropPhase = "cosechado"
)

// Crop is one tracked grow ("chakra").
type Crop struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"ownerId"`
	Name        string    `db:"name" json:"name"`
	Variety     string    `db:"variety" json:"variety"`
	Phase       CropPhase `db:"phase" json:"phase"`
	StartDate   string    `db:"start_date" json:"startDate"`
	HarvestDate string    `db:"harvest_date" json:"harvestDate,omitempty"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CropTask is a unit of work attached to a crop.
type CropTask struct {
	ID          string    `db:"id" json:"id"`
	CropID      string    `db:"crop_id" json:"cropId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	DueDate     string    `db:"due_date" json:"dueDate"`
	Status      string    `db:"status" json:"status"` // pendiente | en_progreso | completada
	Priority    string    `db:"priority" json:"priority"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// DailyLog is one day's environmental reading and free-form notes for a crop.
type DailyLog struct {
	ID          string    `db:"id" json:"id"`
	CropID      string    `db:"crop_id" json:"cropId"`
	LogDate     string    `db:"log_date" json:"logDate"`
	Temperature float64   `db:"temperature" json:"temperature"`
	Humidity    float64   `db:"humidity" json:"humidity"`
	PH          float64   `db:"ph" json:"ph"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
