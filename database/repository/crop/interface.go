package cropRepo

import (
	"context"
	"database/sql"

	"github.com/MazaSebastian/crop-crm-sub000/database"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type CropRepository interface {
	Create(ctx context.Context, crop models.Crop) (string, error)
	GetByID(ctx context.Context, id string) (*models.Crop, error)
	List(ctx context.Context, ownerID string) ([]models.Crop, error)
	Update(ctx context.Context, crop models.Crop) error
	Delete(ctx context.Context, id string) error
}

type postgresCropRepo struct {
	db *sql.DB
}

// NewPostgresCropRepo returns a CropRepository backed by the shared pool.
func NewPostgresCropRepo() CropRepository {
	return &postgresCropRepo{db: database.DB}
}
