package coordination

import (
	"testing"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

func TestQuestionBankCounts(t *testing.T) {
	tests := []struct {
		eventType models.EventType
		want      int
	}{
		{models.EventCasamiento, 5},
		{models.EventCumpleanos, 4},
		{models.EventCorporativo, 3},
		{models.EventXV, 5},
		{models.EventGraduacion, 3},
		{models.EventOtro, 2},
	}
	for _, tc := range tests {
		if got := len(QuestionsForEventType(tc.eventType)); got != tc.want {
			t.Errorf("QuestionsForEventType(%s) count = %d, want %d", tc.eventType, got, tc.want)
		}
	}
}

func TestQuestionBankOrderIsSequential(t *testing.T) {
	for eventType := range questionBank {
		qs := QuestionsForEventType(eventType)
		for i, q := range qs {
			if q.Order != i+1 {
				t.Errorf("%s question %s order = %d, want %d", eventType, q.ID, q.Order, i+1)
			}
			if q.ID == "" || q.Question == "" {
				t.Errorf("%s question %d missing id or text", eventType, i)
			}
		}
	}
}

func TestQuestionBankIDsUniquePerEventType(t *testing.T) {
	for eventType := range questionBank {
		seen := map[string]bool{}
		for _, q := range QuestionsForEventType(eventType) {
			if seen[q.ID] {
				t.Errorf("%s has duplicate question id %s", eventType, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestQuestionsForUnknownEventType(t *testing.T) {
	if qs := QuestionsForEventType("fiesta_pirata"); len(qs) != 0 {
		t.Errorf("unknown event type returned %d questions, want 0", len(qs))
	}
}

func TestQuestionsForEventTypeReturnsCopy(t *testing.T) {
	qs := QuestionsForEventType(models.EventOtro)
	qs[0].Question = "mutated"
	if questionBank[models.EventOtro][0].Question == "mutated" {
		t.Error("caller mutation leaked into the question bank")
	}
}
