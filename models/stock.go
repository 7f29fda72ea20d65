package models

import "time"

// StockItem is one tracked supply (fertilizer, substrate, packaging, ...).
type StockItem struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Unit        string    `db:"unit" json:"unit"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	MinQuantity float64   `db:"min_quantity" json:"minQuantity"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// MovementKind is the direction of a stock movement.
type MovementKind string

const (
	MovementEntrada MovementKind = "entrada"
	MovementSalida  MovementKind = "salida"
)

// StockMovement records one adjustment of an item's quantity.
type StockMovement struct {
	ID        string       `db:"id" json:"id"`
	ItemID    string       `db:"item_id" json:"itemId"`
	Kind      MovementKind `db:"kind" json:"kind"`
	Quantity  float64      `db:"quantity" json:"quantity"`
	Reason    string       `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
}
