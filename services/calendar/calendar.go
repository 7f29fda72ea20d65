// Package calendar builds the month grid consumed by the dashboard calendar
// views. Cells are derived on every request and never stored.
package calendar

import (
	"time"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// Status is the color classification of a calendar day.
type Status string

const (
	StatusNone   Status = "none"
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// DayCell is one slot of the month grid. Padding slots (before the first and
// after the last day of the month) are nil entries in the grid slice.
type DayCell struct {
	Date    string `json:"date"` // ISO yyyy-mm-dd
	Day     int    `json:"day"`
	InMonth bool   `json:"inMonth"`
	Today   bool   `json:"today"`
	Status  Status `json:"status"`
}

// BuildMonthGrid builds a Monday-start grid for the given year and zero-based
// month index. The result length is always a multiple of 7.
func BuildMonthGrid(year, month int) []*DayCell {
	return buildMonthGridAt(year, month, time.Now())
}

func buildMonthGridAt(year, month int, now time.Time) []*DayCell {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := now.Format("2006-01-02")

	// Weekday offset with Monday as column zero.
	lead := (int(first.Weekday()) + 6) % 7

	cells := make([]*DayCell, 0, lead+daysInMonth+6)
	for i := 0; i < lead; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		iso := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		cells = append(cells, &DayCell{
			Date:    iso,
			Day:     day,
			InMonth: true,
			Today:   iso == today,
			Status:  StatusNone,
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}
	return cells
}

// StatusSets holds the ISO dates flagged in each color bucket.
type StatusSets struct {
	Red    map[string]struct{}
	Yellow map[string]struct{}
	Green  map[string]struct{}
}

// BuildStatusSets buckets planned events by their status color.
func BuildStatusSets(events []models.PlannedEvent) StatusSets {
	sets := StatusSets{
		Red:    make(map[string]struct{}),
		Yellow: make(map[string]struct{}),
		Green:  make(map[string]struct{}),
	}
	for _, ev := range events {
		switch ev.Status {
		case models.EventStatusUrgente:
			sets.Red[ev.EventDate] = struct{}{}
		case models.EventStatusPendiente:
			sets.Yellow[ev.EventDate] = struct{}{}
		case models.EventStatusConfirmado:
			sets.Green[ev.EventDate] = struct{}{}
		}
	}
	return sets
}

// Resolve returns the color for a date. When a date lands in more than one
// bucket, red wins over yellow over green.
func (s StatusSets) Resolve(iso string) Status {
	if _, ok := s.Red[iso]; ok {
		return StatusRed
	}
	if _, ok := s.Yellow[iso]; ok {
		return StatusYellow
	}
	if _, ok := s.Green[iso]; ok {
		return StatusGreen
	}
	return StatusNone
}

// ApplyStatuses stamps each non-nil cell with its resolved color.
func ApplyStatuses(cells []*DayCell, sets StatusSets) {
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		cell.Status = sets.Resolve(cell.Date)
	}
}
