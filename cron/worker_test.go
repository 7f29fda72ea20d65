package cron

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

func TestBuildTaskReminderPayload(t *testing.T) {
	task := models.CropTask{ID: "task-7", Title: "Regar la carpa 2", DueDate: "2026-09-01"}
	now := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

	p, _ := buildTaskReminder(task, now)
	if p.RefID != "task-7" {
		t.Errorf("RefID = %s, want task-7", p.RefID)
	}
	if p.Kind != "task" {
		t.Errorf("Kind = %s, want task", p.Kind)
	}
	if p.Body != "Regar la carpa 2" {
		t.Errorf("Body = %s, want the task title", p.Body)
	}
	if p.FireDate != "2026-09-01" {
		t.Errorf("FireDate = %s, want the due date", p.FireDate)
	}
}

func TestBuildTaskReminderEnqueuesIdempotently(t *testing.T) {
	task := models.CropTask{ID: "task-7", Title: "Regar la carpa 2", DueDate: "2026-09-01"}
	_, opts := buildTaskReminder(task, time.Now())

	var taskID string
	var retention time.Duration
	for _, opt := range opts {
		switch opt.Type() {
		case asynq.TaskIDOpt:
			taskID = opt.Value().(string)
		case asynq.RetentionOpt:
			retention = opt.Value().(time.Duration)
		}
	}

	// The queue id is derived from the task id, so hourly sweeps re-enqueue
	// the same reminder instead of stacking duplicates.
	if taskID != "reminder:task:task-7" {
		t.Errorf("task id = %q, want reminder:task:task-7", taskID)
	}
	// The id only blocks duplicates while the task exists, so retention must
	// cover the full sweep window.
	if retention < 24*time.Hour {
		t.Errorf("retention = %v, want at least the 24h sweep window", retention)
	}
}
