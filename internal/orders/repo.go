package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/internal/repo"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
)

// Fetch caps. Dashboards are summaries, never full exports; callers asking
// for more than these get silently clamped.
const (
	MaxVendorOrders = 50
	MaxRecentOrders = 100
	MaxCrossVendor  = 500
)

type repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.Order, error) {
	if limit <= 0 || limit > MaxVendorOrders {
		limit = MaxVendorOrders
	}
	var rows []models.Order
	err := r.DB(ctx).
		Where("vendor_id = ?", vendorID).
		Order("placed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 || limit > MaxRecentOrders {
		limit = MaxRecentOrders
	}
	var rows []models.Order
	err := r.DB(ctx).
		Order("placed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID, limit int) ([]models.Order, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}
	if limit <= 0 || limit > MaxCrossVendor {
		limit = MaxCrossVendor
	}
	var rows []models.Order
	err := r.DB(ctx).
		Where("vendor_id IN ?", vendorIDs).
		Order("placed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
