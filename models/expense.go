package models

import "time"

// Expense is one recorded cost entry.
type Expense struct {
	ID          string    `db:"id" json:"id"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Amount      float64   `db:"amount" json:"amount"`
	ExpenseDate string    `db:"expense_date" json:"expenseDate"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
