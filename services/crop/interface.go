package crop

import (
	"context"

	cropRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/crop"
	dailylogRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/dailylog"
	taskRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/task"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// CropService is the CRUD surface for crops, their tasks and daily logs.
// Repository failures are logged and surfaced as nil/false; nothing here
// panics or bubbles raw errors to the transport layer.
type CropService interface {
	CreateCrop(ctx context.Context, crop models.Crop) *models.Crop
	GetCrop(ctx context.Context, id string) *models.Crop
	ListCrops(ctx context.Context, ownerID string) []models.Crop
	UpdateCrop(ctx context.Context, crop models.Crop) *models.Crop
	DeleteCrop(ctx context.Context, id string) bool

	CreateTask(ctx context.Context, task models.CropTask) *models.CropTask
	ListTasks(ctx context.Context, cropID string) []models.CropTask
	UpdateTaskStatus(ctx context.Context, id, status string) bool
	DeleteTask(ctx context.Context, id string) bool

	CreateLogEntry(ctx context.Context, entry models.DailyLog) *models.DailyLog
	ListLogEntries(ctx context.Context, cropID string) []models.DailyLog
	DeleteLogEntry(ctx context.Context, id string) bool
}

// DefaultCropService is the production implementation.
type DefaultCropService struct {
	Repo     cropRepo.CropRepository
	Tasks    taskRepo.TaskRepository
	DailyLog dailylogRepo.DailyLogRepository
}
