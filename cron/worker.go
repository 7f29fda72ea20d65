package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/MazaSebastian/crop-crm-sub000/config"
	taskRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/task"
	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/notification"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

const TypeReminderSend = "reminder:send"

// reminderScanInterval is how often upcoming crop tasks are swept into the
// reminder queue.
const reminderScanInterval = time.Hour

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

var (
	clientOnce     sync.Once
	reminderClient *asynq.Client
)

// queueClient returns the shared enqueue client, created on first use and
// held for the process lifetime.
func queueClient() *asynq.Client {
	clientOnce.Do(func() {
		reminderClient = asynq.NewClient(redisOpts())
	})
	return reminderClient
}

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reminder worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		logger.Info("firing reminder",
			zap.String("kind", p.Kind),
			zap.String("refId", p.RefID),
			zap.String("title", p.Title))

		notifSvc.Send(ctx, p.Title, p.Body)
		return nil
	}
}

// ScheduleReminder enqueues a reminder with the given asynq options. A
// reminder whose task id is already queued is left alone, so repeat
// scheduling of the same reminder is a no-op.
func ScheduleReminder(p models.ReminderPayload, opts ...asynq.Option) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := queueClient().Enqueue(task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// StartReminderScheduler periodically sweeps crop tasks due within the next
// day into the reminder queue. Stops when ctx is cancelled.
func StartReminderScheduler(ctx context.Context, tasks taskRepo.TaskRepository) {
	logger := utils.GetLogger()

	go func() {
		ticker := time.NewTicker(reminderScanInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("reminder scheduler stopped")
				return
			case <-ticker.C:
				sweepDueTasks(ctx, tasks)
			}
		}
	}()
}

func sweepDueTasks(ctx context.Context, tasks taskRepo.TaskRepository) {
	logger := utils.GetLogger()

	now := time.Now()
	from := now.Format("2006-01-02")
	to := now.Add(24 * time.Hour).Format("2006-01-02")
	due, err := tasks.ListDueBetween(ctx, from, to)
	if err != nil {
		logger.Error("failed to list due tasks", zap.Error(err))
		return
	}

	for _, t := range due {
		p, opts := buildTaskReminder(t, now)
		if err := ScheduleReminder(p, opts...); err != nil {
			logger.Error("failed to schedule task reminder",
				zap.String("taskId", t.ID), zap.Error(err))
		}
	}
}

// buildTaskReminder derives the reminder payload and enqueue options for a
// due crop task. The task id doubles as the queue id, so a task swept more
// than once before firing still produces a single push.
func buildTaskReminder(t models.CropTask, fireAt time.Time) (models.ReminderPayload, []asynq.Option) {
	p := models.ReminderPayload{
		RefID:    t.ID,
		Kind:     "task",
		Title:    "Tarea pendiente",
		Body:     t.Title,
		FireDate: t.DueDate,
	}
	opts := []asynq.Option{
		asynq.TaskID("reminder:task:" + t.ID),
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		// The completed task must outlive the sweep window, otherwise its id
		// frees up and the next sweep duplicates the push.
		asynq.Retention(25 * time.Hour),
	}
	return p, opts
}
