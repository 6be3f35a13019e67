package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
)

// Repository defines read operations over the orders table. Order creation
// belongs to the checkout collaborator; this service only aggregates.
type Repository interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.Order, error)
	ListRecent(ctx context.Context, limit int) ([]models.Order, error)
	ListByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID, limit int) ([]models.Order, error)
}
