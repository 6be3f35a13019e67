package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/internal/repo"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
)

// Fetch caps for catalog reads.
const (
	MaxCatalogList     = 50
	MaxStorefrontList  = 60
	MaxCrossVendorList = 500
)

// Repository defines read operations over the products table and its
// storefront satellites (categories, media, reviews).
type Repository interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.Product, error)
	ListByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID, limit int) ([]models.Product, error)
	ListRecent(ctx context.Context, limit int) ([]models.Product, error)
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
	ListCategoryLinks(ctx context.Context, productIDs []uuid.UUID) ([]models.ProductCategory, error)
	ListMediaByProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.MediaAsset, error)
	ListApprovedReviews(ctx context.Context, productIDs []uuid.UUID) ([]models.Review, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.Product, error) {
	if limit <= 0 || limit > MaxCatalogList {
		limit = MaxCatalogList
	}
	var rows []models.Product
	err := r.DB(ctx).
		Where("vendor_id = ?", vendorID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID, limit int) ([]models.Product, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}
	if limit <= 0 || limit > MaxCrossVendorList {
		limit = MaxCrossVendorList
	}
	var rows []models.Product
	err := r.DB(ctx).
		Where("vendor_id IN ?", vendorIDs).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 || limit > MaxStorefrontList {
		limit = MaxStorefrontList
	}
	var rows []models.Product
	err := r.DB(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.DB(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListCategoryLinks(ctx context.Context, productIDs []uuid.UUID) ([]models.ProductCategory, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var rows []models.ProductCategory
	err := r.DB(ctx).
		Where("product_id IN ?", productIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListMediaByProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.MediaAsset, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var rows []models.MediaAsset
	err := r.DB(ctx).
		Where("product_id IN ?", productIDs).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListApprovedReviews(ctx context.Context, productIDs []uuid.UUID) ([]models.Review, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var rows []models.Review
	err := r.DB(ctx).
		Where("product_id IN ? AND status = ?", productIDs, "approved").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
