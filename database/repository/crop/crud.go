package cropRepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MazaSebastian/crop-crm-sub000/models"
)

// Create inserts a new crop and returns its ID.
func (r *postgresCropRepo) Create(ctx context.Context, crop models.Crop) (string, error) {
	if crop.ID == "" {
		crop.ID = uuid.New().String()
	}
	crop.CreatedAt = time.Now()
	crop.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO crops (id, owner_id, name, variety, phase, start_date, harvest_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		crop.ID, crop.OwnerID, crop.Name, crop.Variety, crop.Phase,
		crop.StartDate, crop.HarvestDate, crop.Notes, crop.CreatedAt, crop.UpdatedAt)
	if err != nil {
		return "", err
	}
	return crop.ID, nil
}

// GetByID returns a crop by its ID.
func (r *postgresCropRepo) GetByID(ctx context.Context, id string) (*models.Crop, error) {
	var crop models.Crop
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, variety, phase, start_date, harvest_date, notes, created_at, updated_at
		FROM crops WHERE id = $1`, id).
		Scan(&crop.ID, &crop.OwnerID, &crop.Name, &crop.Variety, &crop.Phase,
			&crop.StartDate, &crop.HarvestDate, &crop.Notes, &crop.CreatedAt, &crop.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("crop not found")
	}
	if err != nil {
		return nil, err
	}
	return &crop, nil
}

// List fetches all crops for an owner, newest first.
func (r *postgresCropRepo) List(ctx context.Context, ownerID string) ([]models.Crop, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, variety, phase, start_date, harvest_date, notes, created_at, updated_at
		FROM crops WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crops []models.Crop
	for rows.Next() {
		var crop models.Crop
		if err := rows.Scan(&crop.ID, &crop.OwnerID, &crop.Name, &crop.Variety, &crop.Phase,
			&crop.StartDate, &crop.HarvestDate, &crop.Notes, &crop.CreatedAt, &crop.UpdatedAt); err != nil {
			return nil, err
		}
		crops = append(crops, crop)
	}
	return crops, rows.Err()
}

// Update replaces the mutable fields of a crop.
func (r *postgresCropRepo) Update(ctx context.Context, crop models.Crop) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE crops SET name = $2, variety = $3, phase = $4, start_date = $5,
			harvest_date = $6, notes = $7, updated_at = $8
		WHERE id = $1`,
		crop.ID, crop.Name, crop.Variety, crop.Phase, crop.StartDate,
		crop.HarvestDate, crop.Notes, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("crop not found")
	}
	return nil
}

// Delete removes a crop by ID.
func (r *postgresCropRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crops WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("crop not found")
	}
	return nil
}
