package vendors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/internal/repo"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
)

// MaxVendorList caps vendor roll-up queries.
const MaxVendorList = 100

// Repository defines read operations over the vendors table.
type Repository interface {
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*models.Vendor, error)
	ListRecent(ctx context.Context, limit int) ([]models.Vendor, error)
	ListByName(ctx context.Context, limit int) ([]models.Vendor, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Vendor, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a vendors repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.DB(ctx).
		Where("profile_id = ?", profileID).
		First(&vendor).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]models.Vendor, error) {
	if limit <= 0 || limit > MaxVendorList {
		limit = MaxVendorList
	}
	var rows []models.Vendor
	err := r.DB(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListByName(ctx context.Context, limit int) ([]models.Vendor, error) {
	if limit <= 0 || limit > MaxVendorList {
		limit = MaxVendorList
	}
	var rows []models.Vendor
	err := r.DB(ctx).
		Order("business_name ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Vendor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Vendor
	err := r.DB(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
