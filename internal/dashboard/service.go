package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/internal/orders"
	"github.com/lwandile-dev/mzansimarket-backend/internal/products"
	"github.com/lwandile-dev/mzansimarket-backend/internal/profiles"
	"github.com/lwandile-dev/mzansimarket-backend/internal/vendors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/config"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/money"
)

// Default list sizes matching the dashboard widgets.
const (
	DefaultOrderRows        = 5
	DefaultCatalogLimit     = 100
	DefaultOrderListLimit   = 20
	DefaultVendorSummaries  = 12
	adminOrdersLimit        = 100
	adminVendorsLimit       = 100
	adminSalesStreamRows    = 6
	fallbackCustomerName    = "Customer"
	fallbackChannel         = "Marketplace"
	fallbackVendorName      = "Unassigned vendor"
	fallbackVendorRef       = "Vendor"
)

// Service renders the vendor and admin dashboard payloads from the commerce
// read model. All monetary outputs are rand; storage stays in cents.
type Service interface {
	VendorDashboard(ctx context.Context, profileID uuid.UUID) (*VendorDashboardData, error)
	VendorCatalog(ctx context.Context, profileID uuid.UUID, limit int) ([]CatalogProduct, error)
	VendorOrders(ctx context.Context, profileID uuid.UUID, limit int) ([]DashboardOrder, error)
	AdminDashboard(ctx context.Context) (*AdminDashboardData, error)
	AdminVendorSummaries(ctx context.Context, limit int) ([]AdminVendorSummary, error)
}

// ServiceParams wires the repositories and commerce knobs the service needs.
type ServiceParams struct {
	Orders   orders.Repository
	Vendors  vendors.Repository
	Products products.Repository
	Profiles profiles.Repository
	Commerce config.CommerceConfig
}

type service struct {
	orders   orders.Repository
	vendors  vendors.Repository
	products products.Repository
	profiles profiles.Repository
	commerce config.CommerceConfig
}

// NewService builds a dashboard service with the required dependencies.
func NewService(p ServiceParams) (Service, error) {
	if p.Orders == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if p.Vendors == nil {
		return nil, fmt.Errorf("vendors repository required")
	}
	if p.Products == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if p.Profiles == nil {
		return nil, fmt.Errorf("profiles repository required")
	}
	if p.Commerce.DiscountThresholdAmount <= 0 || p.Commerce.DiscountPeriodMonths <= 0 {
		return nil, fmt.Errorf("commerce config incomplete")
	}
	return &service{
		orders:   p.Orders,
		vendors:  p.Vendors,
		products: p.Products,
		profiles: p.Profiles,
		commerce: p.Commerce,
	}, nil
}

// vendorContext resolves the vendor row owned by the calling profile. Every
// vendor-scoped operation starts here.
func (s *service) vendorContext(ctx context.Context, profileID uuid.UUID) (*models.Vendor, error) {
	if profileID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authenticated")
	}
	vendor, err := s.vendors.FindByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Vendor profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendor profile")
	}
	return vendor, nil
}

// formatStatus collapses the three status columns into the single badge the
// dashboard shows. Paid orders surface their fulfillment state.
func formatStatus(order models.Order) string {
	if strings.EqualFold(order.PaymentStatus, "paid") {
		if order.FulfillmentStatus != "" {
			return order.FulfillmentStatus
		}
		if order.Status != "" {
			return order.Status
		}
		return "Paid"
	}
	if strings.EqualFold(order.Status, "fulfilled") {
		return "Fulfilled"
	}
	if order.Status != "" {
		return order.Status
	}
	return "Pending"
}

func isPaid(order models.Order) bool {
	return strings.EqualFold(order.PaymentStatus, "paid")
}

func orderChannel(order models.Order) string {
	if order.Channel == "" {
		return fallbackChannel
	}
	return order.Channel
}

// refFrom derives the three-letter reference tag shown next to stream rows.
func refFrom(name string) string {
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name)
}

func profileMapByID(rows []models.Profile) map[uuid.UUID]models.Profile {
	m := make(map[uuid.UUID]models.Profile, len(rows))
	for _, p := range rows {
		m[p.ID] = p
	}
	return m
}

func customerProfileIDs(rows []models.Order) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	var ids []uuid.UUID
	for _, o := range rows {
		if o.ProfileID == nil || *o.ProfileID == uuid.Nil {
			continue
		}
		if _, ok := seen[*o.ProfileID]; ok {
			continue
		}
		seen[*o.ProfileID] = struct{}{}
		ids = append(ids, *o.ProfileID)
	}
	return ids
}

// buildOrdersList projects the first rows of an already-sorted order slice
// into the recent-orders widget shape.
func buildOrdersList(rows []models.Order, profileMap map[uuid.UUID]models.Profile, limit int) []DashboardOrder {
	if limit <= 0 {
		limit = DefaultOrderRows
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	list := make([]DashboardOrder, 0, len(rows))
	for _, o := range rows {
		customer := fallbackCustomerName
		if o.ProfileID != nil {
			if p, ok := profileMap[*o.ProfileID]; ok && p.DisplayName != nil && *p.DisplayName != "" {
				customer = *p.DisplayName
			}
		}
		number := o.OrderNumber
		if number == "" {
			number = o.ID.String()
		}
		list = append(list, DashboardOrder{
			ID:          o.ID,
			OrderNumber: number,
			Customer:    customer,
			Value:       money.CentsToRand(o.TotalCents),
			Status:      formatStatus(o),
			PlacedAt:    o.PlacedAt,
		})
	}
	return list
}

func (s *service) loadProfileMap(ctx context.Context, orderRows []models.Order) (map[uuid.UUID]models.Profile, error) {
	ids := customerProfileIDs(orderRows)
	if len(ids) == 0 {
		return map[uuid.UUID]models.Profile{}, nil
	}
	rows, err := s.profiles.ListByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load profiles")
	}
	return profileMapByID(rows), nil
}
