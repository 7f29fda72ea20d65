package expense

import (
	"context"

	"go.uber.org/zap"

	expenseRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/expense"
	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// ExpenseService is the CRUD surface for cost entries. Repository failures
// are logged and surfaced as nil/false.
type ExpenseService interface {
	Create(ctx context.Context, exp models.Expense) *models.Expense
	List(ctx context.Context) []models.Expense
	ListByDateRange(ctx context.Context, from, to string) []models.Expense
	Update(ctx context.Context, exp models.Expense) *models.Expense
	Delete(ctx context.Context, id string) bool
}

// DefaultExpenseService is the production implementation.
type DefaultExpenseService struct {
	Repo expenseRepo.ExpenseRepository
}

func (s *DefaultExpenseService) Create(ctx context.Context, exp models.Expense) *models.Expense {
	logger := utils.GetLogger()
	id, err := s.Repo.Create(ctx, exp)
	if err != nil {
		logger.Error("failed to create expense", zap.String("category", exp.Category), zap.Error(err))
		return nil
	}
	exp.ID = id
	return &exp
}

func (s *DefaultExpenseService) List(ctx context.Context) []models.Expense {
	logger := utils.GetLogger()
	exps, err := s.Repo.List(ctx)
	if err != nil {
		logger.Error("failed to list expenses", zap.Error(err))
		return nil
	}
	return exps
}

func (s *DefaultExpenseService) ListByDateRange(ctx context.Context, from, to string) []models.Expense {
	logger := utils.GetLogger()
	exps, err := s.Repo.ListByDateRange(ctx, from, to)
	if err != nil {
		logger.Error("failed to list expenses by range",
			zap.String("from", from), zap.String("to", to), zap.Error(err))
		return nil
	}
	return exps
}

func (s *DefaultExpenseService) Update(ctx context.Context, exp models.Expense) *models.Expense {
	logger := utils.GetLogger()
	if err := s.Repo.Update(ctx, exp); err != nil {
		logger.Error("failed to update expense", zap.String("id", exp.ID), zap.Error(err))
		return nil
	}
	return &exp
}

func (s *DefaultExpenseService) Delete(ctx context.Context, id string) bool {
	logger := utils.GetLogger()
	if err := s.Repo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete expense", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}
