package calendar

import (
	"testing"
	"time"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

func TestBuildMonthGridJanuary2025(t *testing.T) {
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	cells := buildMonthGridAt(2025, 0, now)

	if len(cells)%7 != 0 {
		t.Fatalf("grid length %d is not a multiple of 7", len(cells))
	}
	// January 2025 starts on a Wednesday: two leading pads, 31 days, 35 slots.
	if len(cells) != 35 {
		t.Errorf("grid length = %d, want 35", len(cells))
	}
	if cells[0] != nil || cells[1] != nil {
		t.Error("expected two leading padding cells")
	}
	if cells[2] == nil || cells[2].Day != 1 {
		t.Fatalf("cells[2] = %+v, want day 1", cells[2])
	}
	if cells[2].Date != "2025-01-01" {
		t.Errorf("cells[2].Date = %s, want 2025-01-01", cells[2].Date)
	}
	if cells[34] != nil {
		t.Error("expected a trailing padding cell after Jan 31")
	}

	var today *DayCell
	for _, c := range cells {
		if c != nil && c.Today {
			if today != nil {
				t.Fatal("more than one cell marked today")
			}
			today = c
		}
	}
	if today == nil || today.Day != 15 {
		t.Errorf("today cell = %+v, want day 15", today)
	}
}

func TestBuildMonthGridMondayStart(t *testing.T) {
	// June 2025 starts on a Sunday, the last Monday-start column.
	cells := buildMonthGridAt(2025, 5, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	for i := 0; i < 6; i++ {
		if cells[i] != nil {
			t.Errorf("cells[%d] = %+v, want padding", i, cells[i])
		}
	}
	if cells[6] == nil || cells[6].Day != 1 {
		t.Fatalf("cells[6] = %+v, want day 1", cells[6])
	}
	// September 2025 starts on a Monday: no leading padding.
	cells = buildMonthGridAt(2025, 8, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	if cells[0] == nil || cells[0].Day != 1 {
		t.Fatalf("cells[0] = %+v, want day 1", cells[0])
	}
}

func TestStatusPriority(t *testing.T) {
	sets := BuildStatusSets([]models.PlannedEvent{
		{EventDate: "2025-01-10", Status: models.EventStatusConfirmado},
		{EventDate: "2025-01-10", Status: models.EventStatusPendiente},
		{EventDate: "2025-01-10", Status: models.EventStatusUrgente},
		{EventDate: "2025-01-11", Status: models.EventStatusPendiente},
		{EventDate: "2025-01-11", Status: models.EventStatusConfirmado},
		{EventDate: "2025-01-12", Status: models.EventStatusConfirmado},
	})

	tests := []struct {
		date string
		want Status
	}{
		{"2025-01-10", StatusRed},
		{"2025-01-11", StatusYellow},
		{"2025-01-12", StatusGreen},
		{"2025-01-13", StatusNone},
	}
	for _, tc := range tests {
		if got := sets.Resolve(tc.date); got != tc.want {
			t.Errorf("Resolve(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}
}

func TestApplyStatuses(t *testing.T) {
	cells := buildMonthGridAt(2025, 0, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	sets := BuildStatusSets([]models.PlannedEvent{
		{EventDate: "2025-01-01", Status: models.EventStatusUrgente},
		{EventDate: "2025-01-20", Status: models.EventStatusConfirmado},
	})
	ApplyStatuses(cells, sets)

	for _, c := range cells {
		if c == nil {
			continue
		}
		switch c.Date {
		case "2025-01-01":
			if c.Status != StatusRed {
				t.Errorf("Jan 1 status = %s, want red", c.Status)
			}
		case "2025-01-20":
			if c.Status != StatusGreen {
				t.Errorf("Jan 20 status = %s, want green", c.Status)
			}
		default:
			if c.Status != StatusNone {
				t.Errorf("%s status = %s, want none", c.Date, c.Status)
			}
		}
	}
}
