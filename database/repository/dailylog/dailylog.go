package dailylogRepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type DailyLogRepository interface {
	Create(ctx context.Context, entry models.DailyLog) (string, error)
	ListByCrop(ctx context.Context, cropID string) ([]models.DailyLog, error)
	Delete(ctx context.Context, id string) error
}

type postgresDailyLogRepo struct {
	db *sql.DB
}

func NewPostgresDailyLogRepo() DailyLogRepository {
	return &postgresDailyLogRepo{db: database.DB}
}

func (r *postgresDailyLogRepo) Create(ctx context.Context, entry models.DailyLog) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_logs (id, crop_id, log_date, temperature, humidity, ph, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.CropID, entry.LogDate, entry.Temperature,
		entry.Humidity, entry.PH, entry.Notes, entry.CreatedAt)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *postgresDailyLogRepo) ListByCrop(ctx context.Context, cropID string) ([]models.DailyLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, crop_id, log_date, temperature, humidity, ph, notes, created_at
		FROM daily_logs WHERE crop_id = $1 ORDER BY log_date DESC`, cropID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DailyLog
	for rows.Next() {
		var e models.DailyLog
		if err := rows.Scan(&e.ID, &e.CropID, &e.LogDate, &e.Temperature,
			&e.Humidity, &e.PH, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresDailyLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("log entry not found")
	}
	return nil
}
