package stockRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

func (r *postgresStockRepo) CreateItem(ctx context.Context, item models.StockItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stock_items (id, name, category, unit, quantity, min_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.Category, item.Unit, item.Quantity,
		item.MinQuantity, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *postgresStockRepo) GetItemByID(ctx context.Context, id string) (*models.StockItem, error) {
	var item models.StockItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, unit, quantity, min_quantity, created_at, updated_at
		FROM stock_items WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Category, &item.Unit, &item.Quantity,
			&item.MinQuantity, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("stock item not found")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresStockRepo) ListItems(ctx context.Context) ([]models.StockItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, unit, quantity, min_quantity, created_at, updated_at
		FROM stock_items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.StockItem
	for rows.Next() {
		var item models.StockItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Unit,
			&item.Quantity, &item.MinQuantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresStockRepo) UpdateItem(ctx context.Context, item models.StockItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE stock_items SET name = $2, category = $3, unit = $4,
			quantity = $5, min_quantity = $6, updated_at = $7
		WHERE id = $1`,
		item.ID, item.Name, item.Category, item.Unit, item.Quantity,
		item.MinQuantity, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("stock item not found")
	}
	return nil
}

func (r *postgresStockRepo) DeleteItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("stock item not found")
	}
	return nil
}

// RecordMovement inserts the movement row and adjusts the owning item's
// quantity atomically. A salida larger than the available quantity fails.
func (r *postgresStockRepo) RecordMovement(ctx context.Context, mov models.StockMovement) (string, error) {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	mov.CreatedAt = time.Now()

	delta := mov.Quantity
	if mov.Kind == models.MovementSalida {
		delta = -delta
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE stock_items SET quantity = quantity + $2, updated_at = $3
		WHERE id = $1 AND quantity + $2 >= 0`,
		mov.ItemID, delta, time.Now())
	if err != nil {
		return "", err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", fmt.Errorf("movement rejected for item %s: missing item or insufficient stock", mov.ItemID)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO stock_movements (id, item_id, kind, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		mov.ID, mov.ItemID, mov.Kind, mov.Quantity, mov.Reason, mov.CreatedAt)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return mov.ID, nil
}

func (r *postgresStockRepo) ListMovements(ctx context.Context, itemID string) ([]models.StockMovement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_id, kind, quantity, reason, created_at
		FROM stock_movements WHERE item_id = $1 ORDER BY created_at DESC`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movs []models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Kind, &m.Quantity, &m.Reason, &m.CreatedAt); err != nil {
			return nil, err
		}
		movs = append(movs, m)
	}
	return movs, rows.Err()
}
