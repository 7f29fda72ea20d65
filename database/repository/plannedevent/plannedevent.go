package plannedeventRepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type PlannedEventRepository interface {
	Create(ctx context.Context, ev models.PlannedEvent) (string, error)
	ListByDateRange(ctx context.Context, from, to string) ([]models.PlannedEvent, error)
	Update(ctx context.Context, ev models.PlannedEvent) error
	Delete(ctx context.Context, id string) error
}

type postgresPlannedEventRepo struct {
	db *sql.DB
}

func NewPostgresPlannedEventRepo() PlannedEventRepository {
	return &postgresPlannedEventRepo{db: database.DB}
}

func (r *postgresPlannedEventRepo) Create(ctx context.Context, ev models.PlannedEvent) (string, error) {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Status == "" {
		ev.Status = models.EventStatusPendiente
	}
	ev.CreatedAt = time.Now()
	ev.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO planned_events (id, title, event_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.ID, ev.Title, ev.EventDate, ev.Status, ev.Notes, ev.CreatedAt, ev.UpdatedAt)
	if err != nil {
		return "", err
	}
	return ev.ID, nil
}

func (r *postgresPlannedEventRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.PlannedEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, event_date, status, notes, created_at, updated_at
		FROM planned_events WHERE event_date BETWEEN $1 AND $2 ORDER BY event_date`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.PlannedEvent
	for rows.Next() {
		var ev models.PlannedEvent
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.EventDate, &ev.Status,
			&ev.Notes, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *postgresPlannedEventRepo) Update(ctx context.Context, ev models.PlannedEvent) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE planned_events SET title = $2, event_date = $3, status = $4, notes = $5, updated_at = $6
		WHERE id = $1`,
		ev.ID, ev.Title, ev.EventDate, ev.Status, ev.Notes, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("planned event not found")
	}
	return nil
}

func (r *postgresPlannedEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM planned_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("planned event not found")
	}
	return nil
}
