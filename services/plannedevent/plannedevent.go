package plannedevent

import (
	"context"

	"go.uber.org/zap"

	plannedeventRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/plannedevent"
	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// PlannedEventService manages the dated entries shown on the month calendar.
// Repository failures are logged and surfaced as nil/false.
type PlannedEventService interface {
	Create(ctx context.Context, ev models.PlannedEvent) *models.PlannedEvent
	ListByDateRange(ctx context.Context, from, to string) []models.PlannedEvent
	Update(ctx context.Context, ev models.PlannedEvent) *models.PlannedEvent
	Delete(ctx context.Context, id string) bool
}

// DefaultPlannedEventService is the production implementation.
type DefaultPlannedEventService struct {
	Repo plannedeventRepo.PlannedEventRepository
}

func (s *DefaultPlannedEventService) Create(ctx context.Context, ev models.PlannedEvent) *models.PlannedEvent {
	logger := utils.GetLogger()
	id, err := s.Repo.Create(ctx, ev)
	if err != nil {
		logger.Error("failed to create planned event", zap.String("title", ev.Title), zap.Error(err))
		return nil
	}
	ev.ID = id
	if ev.Status == "" {
		ev.Status = models.EventStatusPendiente
	}
	return &ev
}

func (s *DefaultPlannedEventService) ListByDateRange(ctx context.Context, from, to string) []models.PlannedEvent {
	logger := utils.GetLogger()
	events, err := s.Repo.ListByDateRange(ctx, from, to)
	if err != nil {
		logger.Error("failed to list planned events",
			zap.String("from", from), zap.String("to", to), zap.Error(err))
		return nil
	}
	return events
}

func (s *DefaultPlannedEventService) Update(ctx context.Context, ev models.PlannedEvent) *models.PlannedEvent {
	logger := utils.GetLogger()
	if err := s.Repo.Update(ctx, ev); err != nil {
		logger.Error("failed to update planned event", zap.String("id", ev.ID), zap.Error(err))
		return nil
	}
	return &ev
}

func (s *DefaultPlannedEventService) Delete(ctx context.Context, id string) bool {
	logger := utils.GetLogger()
	if err := s.Repo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete planned event", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}
