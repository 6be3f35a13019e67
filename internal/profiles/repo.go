package profiles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/internal/repo"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
)

// MaxProfileList caps the platform-wide customer count query.
const MaxProfileList = 500

// Repository defines read operations over the auth-owned profiles table.
type Repository interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error)
	List(ctx context.Context, limit int) ([]models.Profile, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a profiles repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Profile
	err := r.DB(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) List(ctx context.Context, limit int) ([]models.Profile, error) {
	if limit <= 0 || limit > MaxProfileList {
		limit = MaxProfileList
	}
	var rows []models.Profile
	err := r.DB(ctx).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
