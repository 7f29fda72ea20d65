package stockRepo

import (
	"context"
	"database/sql"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type StockRepository interface {
	CreateItem(ctx context.Context, item models.StockItem) (string, error)
	GetItemByID(ctx context.Context, id string) (*models.StockItem, error)
	ListItems(ctx context.Context) ([]models.StockItem, error)
	UpdateItem(ctx context.Context, item models.StockItem) error
	DeleteItem(ctx context.Context, id string) error

	// RecordMovement inserts a movement and adjusts the item quantity in one
	// transaction.
	RecordMovement(ctx context.Context, mov models.StockMovement) (string, error)
	ListMovements(ctx context.Context, itemID string) ([]models.StockMovement, error)
}

type postgresStockRepo struct {
	db *sql.DB
}

func NewPostgresStockRepo() StockRepository {
	return &postgresStockRepo{db: database.DB}
}
