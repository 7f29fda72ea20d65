package crop

import (
	"context"

	"go.uber.org/zap"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

func (s *DefaultCropService) CreateCrop(ctx context.Context, crop models.Crop) *models.Crop {
	logger := utils.GetLogger()
	id, err := s.Repo.Create(ctx, crop)
	if err != nil {
		logger.Error("failed to create crop", zap.String("name", crop.Name), zap.Error(err))
		return nil
	}
	created, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		logger.Error("failed to load created crop", zap.String("id", id), zap.Error(err))
		return nil
	}
	return created
}

func (s *DefaultCropService) GetCrop(ctx context.Context, id string) *models.Crop {
	logger := utils.GetLogger()
	crop, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		logger.Warn("crop lookup failed", zap.String("id", id), zap.Error(err))
		return nil
	}
	return crop
}

func (s *DefaultCropService) ListCrops(ctx context.Context, ownerID string) []models.Crop {
	logger := utils.GetLogger()
	crops, err := s.Repo.List(ctx, ownerID)
	if err != nil {
		logger.Error("failed to list crops", zap.String("ownerId", ownerID), zap.Error(err))
		return nil
	}
	return crops
}

func (s *DefaultCropService) UpdateCrop(ctx context.Context, crop models.Crop) *models.Crop {
	logger := utils.GetLogger()
	if err := s.Repo.Update(ctx, crop); err != nil {
		logger.Error("failed to update crop", zap.String("id", crop.ID), zap.Error(err))
		return nil
	}
	updated, err := s.Repo.GetByID(ctx, crop.ID)
	if err != nil {
		logger.Error("failed to load updated crop", zap.String("id", crop.ID), zap.Error(err))
		return nil
	}
	return updated
}

func (s *DefaultCropService) DeleteCrop(ctx context.Context, id string) bool {
	logger := utils.GetLogger()
	if err := s.Repo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete crop", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultCropService) CreateTask(ctx context.Context, task models.CropTask) *models.CropTask {
	logger := utils.GetLogger()
	id, err := s.Tasks.Create(ctx, task)
	if err != nil {
		logger.Error("failed to create task", zap.String("cropId", task.CropID), zap.Error(err))
		return nil
	}
	task.ID = id
	return &task
}

func (s *DefaultCropService) ListTasks(ctx context.Context, cropID string) []models.CropTask {
	logger := utils.GetLogger()
	tasks, err := s.Tasks.ListByCrop(ctx, cropID)
	if err != nil {
		logger.Error("failed to list tasks", zap.String("cropId", cropID), zap.Error(err))
		return nil
	}
	return tasks
}

func (s *DefaultCropService) UpdateTaskStatus(ctx context.Context, id, status string) bool {
	logger := utils.GetLogger()
	if err := s.Tasks.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("failed to update task status",
			zap.String("id", id), zap.String("status", status), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultCropService) DeleteTask(ctx context.Context, id string) bool {
	logger := utils.GetLogger()
	if err := s.Tasks.Delete(ctx, id); err != nil {
		logger.Error("failed to delete task", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultCropService) CreateLogEntry(ctx context.Context, entry models.DailyLog) *models.DailyLog {
	logger := utils.GetLogger()
	id, err := s.DailyLog.Create(ctx, entry)
	if err != nil {
		logger.Error("failed to create log entry", zap.String("cropId", entry.CropID), zap.Error(err))
		return nil
	}
	entry.ID = id
	return &entry
}

func (s *DefaultCropService) ListLogEntries(ctx context.Context, cropID string) []models.DailyLog {
	logger := utils.GetLogger()
	entries, err := s.DailyLog.ListByCrop(ctx, cropID)
	if err != nil {
		logger.Error("failed to list log entries", zap.String("cropId", cropID), zap.Error(err))
		return nil
	}
	return entries
}

func (s *DefaultCropService) DeleteLogEntry(ctx context.Context, id string) bool {
	logger := utils.GetLogger()
	if err := s.DailyLog.Delete(ctx, id); err != nil {
		logger.Error("failed to delete log entry", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}
