package expenseRepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, exp models.Expense) (string, error)
	List(ctx context.Context) ([]models.Expense, error)
	ListByDateRange(ctx context.Context, from, to string) ([]models.Expense, error)
	Update(ctx context.Context, exp models.Expense) error
	Delete(ctx context.Context, id string) error
}

type postgresExpenseRepo struct {
	db *sql.DB
}

func NewPostgresExpenseRepo() ExpenseRepository {
	return &postgresExpenseRepo{db: database.DB}
}

func (r *postgresExpenseRepo) Create(ctx context.Context, exp models.Expense) (string, error) {
	if exp.ID == "" {
		exp.ID = uuid.New().String()
	}
	exp.CreatedAt = time.Now()
	exp.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, category, description, amount, expense_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		exp.ID, exp.Category, exp.Description, exp.Amount, exp.ExpenseDate,
		exp.CreatedAt, exp.UpdatedAt)
	if err != nil {
		return "", err
	}
	return exp.ID, nil
}

func (r *postgresExpenseRepo) List(ctx context.Context) ([]models.Expense, error) {
	return r.list(ctx, `
		SELECT id, category, description, amount, expense_date, created_at, updated_at
		FROM expenses ORDER BY expense_date DESC`)
}

func (r *postgresExpenseRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.Expense, error) {
	return r.list(ctx, `
		SELECT id, category, description, amount, expense_date, created_at, updated_at
		FROM expenses WHERE expense_date BETWEEN $1 AND $2 ORDER BY expense_date`, from, to)
}

func (r *postgresExpenseRepo) list(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exps []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount,
			&e.ExpenseDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return exps, rows.Err()
}

func (r *postgresExpenseRepo) Update(ctx context.Context, exp models.Expense) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenses SET category = $2, description = $3, amount = $4,
			expense_date = $5, updated_at = $6
		WHERE id = $1`,
		exp.ID, exp.Category, exp.Description, exp.Amount, exp.ExpenseDate, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("expense not found")
	}
	return nil
}

func (r *postgresExpenseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("expense not found")
	}
	return nil
}
