package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// ErrUserNotFound is returned for lookups that match no account.
var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(ctx context.Context, user models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	// UpdateTokenHash persists the hash of the issued token; an empty hash
	// revokes the session.
	UpdateTokenHash(ctx context.Context, id, hash string) error
	ListFCMTokens(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

type postgresUserRepo struct {
	db *sql.DB
}

func NewPostgresUserRepo() UserRepository {
	return &postgresUserRepo{db: database.DB}
}

func (r *postgresUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = "socio"
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, token_hash, role, fcm_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.TokenHash,
		user.Role, user.FCMToken, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, `
		SELECT id, username, email, password_hash, token_hash, role, fcm_token, created_at, updated_at
		FROM users WHERE id = $1`, id)
}

func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, `
		SELECT id, username, email, password_hash, token_hash, role, fcm_token, created_at, updated_at
		FROM users WHERE email = $1`, email)
}

func (r *postgresUserRepo) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.TokenHash,
			&u.Role, &u.FCMToken, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresUserRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET fcm_token = $2, updated_at = $3 WHERE id = $1`,
		id, token, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *postgresUserRepo) UpdateTokenHash(ctx context.Context, id, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET token_hash = $2, updated_at = $3 WHERE id = $1`,
		id, hash, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListFCMTokens returns every non-empty registered device token.
func (r *postgresUserRepo) ListFCMTokens(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT fcm_token FROM users WHERE fcm_token <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *postgresUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
