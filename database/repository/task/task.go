package taskRepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task models.CropTask) (string, error)
	ListByCrop(ctx context.Context, cropID string) ([]models.CropTask, error)
	ListDueBetween(ctx context.Context, from, to string) ([]models.CropTask, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type postgresTaskRepo struct {
	db *sql.DB
}

func NewPostgresTaskRepo() TaskRepository {
	return &postgresTaskRepo{db: database.DB}
}

func (r *postgresTaskRepo) Create(ctx context.Context, task models.CropTask) (string, error) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = "pendiente"
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO crop_tasks (id, crop_id, title, description, due_date, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		task.ID, task.CropID, task.Title, task.Description, task.DueDate,
		task.Status, task.Priority, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return "", err
	}
	return task.ID, nil
}

func (r *postgresTaskRepo) ListByCrop(ctx context.Context, cropID string) ([]models.CropTask, error) {
	return r.list(ctx, `
		SELECT id, crop_id, title, description, due_date, status, priority, created_at, updated_at
		FROM crop_tasks WHERE crop_id = $1 ORDER BY due_date`, cropID)
}

// ListDueBetween returns pending tasks whose due date falls in [from, to].
// Used by the reminder worker.
func (r *postgresTaskRepo) ListDueBetween(ctx context.Context, from, to string) ([]models.CropTask, error) {
	return r.list(ctx, `
		SELECT id, crop_id, title, description, due_date, status, priority, created_at, updated_at
		FROM crop_tasks WHERE status <> 'completada' AND due_date BETWEEN $1 AND $2
		ORDER BY due_date`, from, to)
}

func (r *postgresTaskRepo) list(ctx context.Context, query string, args ...any) ([]models.CropTask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.CropTask
	for rows.Next() {
		var t models.CropTask
		if err := rows.Scan(&t.ID, &t.CropID, &t.Title, &t.Description, &t.DueDate,
			&t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *postgresTaskRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE crop_tasks SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("task not found")
	}
	return nil
}

func (r *postgresTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crop_tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("task not found")
	}
	return nil
}
