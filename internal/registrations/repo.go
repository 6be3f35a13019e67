package registrations

import (
	"context"

	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/internal/repo"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
)

// Repository persists intake submissions. These are the only tables this
// service writes.
type Repository interface {
	CreateVendorApplication(ctx context.Context, application *models.VendorApplication) (*models.VendorApplication, error)
	CreateCipcRegistration(ctx context.Context, registration *models.CipcRegistration) (*models.CipcRegistration, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a registrations repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) CreateVendorApplication(ctx context.Context, application *models.VendorApplication) (*models.VendorApplication, error) {
	if err := r.DB(ctx).Create(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

func (r *repository) CreateCipcRegistration(ctx context.Context, registration *models.CipcRegistration) (*models.CipcRegistration, error) {
	if err := r.DB(ctx).Create(registration).Error; err != nil {
		return nil, err
	}
	return registration, nil
}
