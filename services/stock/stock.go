package stock

import (
	"context"

	"go.uber.org/zap"

	stockRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/stock"
	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/notification"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// StockService is the CRUD surface for supplies and their movements.
// Repository failures are logged and surfaced as nil/false.
type StockService interface {
	CreateItem(ctx context.Context, item models.StockItem) *models.StockItem
	ListItems(ctx context.Context) []models.StockItem
	UpdateItem(ctx context.Context, item models.StockItem) *models.StockItem
	DeleteItem(ctx context.Context, id string) bool

	RecordMovement(ctx context.Context, mov models.StockMovement) *models.StockMovement
	ListMovements(ctx context.Context, itemID string) []models.StockMovement
}

// DefaultStockService is the production implementation.
type DefaultStockService struct {
	Repo stockRepo.StockRepository
	// Notifier warns when an item falls below its minimum; optional.
	Notifier notification.NotificationService
}

func (s *DefaultStockService) CreateItem(ctx context.Context, item models.StockItem) *models.StockItem {
	logger := utils.GetLogger()
	id, err := s.Repo.CreateItem(ctx, item)
	if err != nil {
		logger.Error("failed to create stock item", zap.String("name", item.Name), zap.Error(err))
		return nil
	}
	created, err := s.Repo.GetItemByID(ctx, id)
	if err != nil {
		logger.Error("failed to load created stock item", zap.String("id", id), zap.Error(err))
		return nil
	}
	return created
}

func (s *DefaultStockService) ListItems(ctx context.Context) []models.StockItem {
	logger := utils.GetLogger()
	items, err := s.Repo.ListItems(ctx)
	if err != nil {
		logger.Error("failed to list stock items", zap.Error(err))
		return nil
	}
	return items
}

func (s *DefaultStockService) UpdateItem(ctx context.Context, item models.StockItem) *models.StockItem {
	logger := utils.GetLogger()
	if err := s.Repo.UpdateItem(ctx, item); err != nil {
		logger.Error("failed to update stock item", zap.String("id", item.ID), zap.Error(err))
		return nil
	}
	updated, err := s.Repo.GetItemByID(ctx, item.ID)
	if err != nil {
		logger.Error("failed to load updated stock item", zap.String("id", item.ID), zap.Error(err))
		return nil
	}
	return updated
}

func (s *DefaultStockService) DeleteItem(ctx context.Context, id string) bool {
	logger := utils.GetLogger()
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		logger.Error("failed to delete stock item", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}

// RecordMovement applies a stock movement and, when the resulting quantity
// drops below the item minimum, pushes a low-stock warning.
func (s *DefaultStockService) RecordMovement(ctx context.Context, mov models.StockMovement) *models.StockMovement {
	logger := utils.GetLogger()
	id, err := s.Repo.RecordMovement(ctx, mov)
	if err != nil {
		logger.Error("failed to record stock movement",
			zap.String("itemId", mov.ItemID), zap.String("kind", string(mov.Kind)), zap.Error(err))
		return nil
	}
	mov.ID = id

	item, err := s.Repo.GetItemByID(ctx, mov.ItemID)
	if err == nil && s.Notifier != nil && item.Quantity < item.MinQuantity {
		s.Notifier.Send(ctx, "Stock bajo",
			item.Name+" quedó por debajo del mínimo configurado")
	}
	return &mov
}

func (s *DefaultStockService) ListMovements(ctx context.Context, itemID string) []models.StockMovement {
	logger := utils.GetLogger()
	movs, err := s.Repo.ListMovements(ctx, itemID)
	if err != nil {
		logger.Error("failed to list stock movements", zap.String("itemId", itemID), zap.Error(err))
		return nil
	}
	return movs
}
