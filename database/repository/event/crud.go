package eventRepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

func (r *postgresEventRepo) GetByCode(ctx context.Context, code string) (*models.EventInfo, error) {
	var info models.EventInfo
	err := r.db.QueryRowContext(ctx, `
		SELECT code, client_name, event_type, event_date, event_time, guest_count, venue
		FROM event_codes WHERE code = $1`, code).
		Scan(&info.Code, &info.ClientName, &info.EventType, &info.EventDate,
			&info.EventTime, &info.GuestCount, &info.Venue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *postgresEventRepo) CreateCode(ctx context.Context, info models.EventInfo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO event_codes (code, client_name, event_type, event_date, event_time, guest_count, venue)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		info.Code, info.ClientName, info.EventType, info.EventDate,
		info.EventTime, info.GuestCount, info.Venue)
	return err
}

// SaveSession upserts a session snapshot; answers are stored as JSONB.
func (r *postgresEventRepo) SaveSession(ctx context.Context, session models.CoordinationSession) error {
	answers, err := json.Marshal(session.Answers)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO coordination_sessions (id, event_code, answers, current_step, total_steps, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			answers = EXCLUDED.answers,
			current_step = EXCLUDED.current_step,
			completed = EXCLUDED.completed,
			updated_at = EXCLUDED.updated_at`,
		session.ID, session.EventCode, answers, session.CurrentStep,
		session.TotalSteps, session.Completed, session.CreatedAt, time.Now())
	return err
}

func (r *postgresEventRepo) GetSessionByEventCode(ctx context.Context, code string) (*models.CoordinationSession, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, event_code, answers, current_step, total_steps, completed, created_at, updated_at
		FROM coordination_sessions WHERE event_code = $1
		ORDER BY updated_at DESC LIMIT 1`, code)

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("coordination session not found")
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *postgresEventRepo) ListSessions(ctx context.Context) ([]models.CoordinationSession, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_code, answers, current_step, total_steps, completed, created_at, updated_at
		FROM coordination_sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.CoordinationSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.CoordinationSession, error) {
	var session models.CoordinationSession
	var answers []byte
	if err := row.Scan(&session.ID, &session.EventCode, &answers, &session.CurrentStep,
		&session.TotalSteps, &session.Completed, &session.CreatedAt, &session.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(answers, &session.Answers); err != nil {
		return nil, err
	}
	return &session, nil
}
