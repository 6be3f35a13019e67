package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lwandile-dev/mzansimarket-backend/internal/products"
	"github.com/lwandile-dev/mzansimarket-backend/internal/vendors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/config"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/money"
)

// Listing sizes for the public storefront.
const (
	DefaultInventoryLimit = 60
	DefaultFeaturedLimit  = 6
	fallbackVendorName    = "Unassigned vendor"
	defaultCurrency       = "ZAR"
)

// Service assembles the public storefront inventory.
type Service interface {
	Inventory(ctx context.Context, limit int) (*Inventory, error)
	FeaturedProducts(ctx context.Context, limit int) ([]Product, error)
}

// ServiceParams wires the storefront dependencies.
type ServiceParams struct {
	Products products.Repository
	Vendors  vendors.Repository
	Storage  config.StorageConfig
}

type service struct {
	products products.Repository
	vendors  vendors.Repository
	storage  config.StorageConfig
}

// NewService builds a marketplace service with the required dependencies.
func NewService(p ServiceParams) (Service, error) {
	if p.Products == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if p.Vendors == nil {
		return nil, fmt.Errorf("vendors repository required")
	}
	return &service{
		products: p.Products,
		vendors:  p.Vendors,
		storage:  p.Storage,
	}, nil
}

// Inventory loads the most recently updated listings plus the active category
// tree and stitches vendors, first-position media and approved review
// aggregates onto each product.
func (s *service) Inventory(ctx context.Context, limit int) (*Inventory, error) {
	if limit <= 0 {
		limit = DefaultInventoryLimit
	}
	productRows, err := s.products.ListRecent(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load products")
	}

	productIDs := make([]uuid.UUID, 0, len(productRows))
	vendorIDSet := make(map[uuid.UUID]struct{})
	var vendorIDs []uuid.UUID
	for _, p := range productRows {
		productIDs = append(productIDs, p.ID)
		if p.VendorID == nil {
			continue
		}
		if _, ok := vendorIDSet[*p.VendorID]; ok {
			continue
		}
		vendorIDSet[*p.VendorID] = struct{}{}
		vendorIDs = append(vendorIDs, *p.VendorID)
	}

	var (
		categoryRows []models.Category
		linkRows     []models.ProductCategory
		vendorRows   []models.Vendor
		mediaRows    []models.MediaAsset
		reviewRows   []models.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.products.ListActiveCategories(gctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load categories")
		}
		categoryRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.products.ListCategoryLinks(gctx, productIDs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load categories")
		}
		linkRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.vendors.ListByIDs(gctx, vendorIDs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendors")
		}
		vendorRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.products.ListMediaByProducts(gctx, productIDs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load product media")
		}
		mediaRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.products.ListApprovedReviews(gctx, productIDs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load product reviews")
		}
		reviewRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	vendorsByID := make(map[uuid.UUID]models.Vendor, len(vendorRows))
	for _, v := range vendorRows {
		vendorsByID[v.ID] = v
	}
	categoriesByID := make(map[uuid.UUID]models.Category, len(categoryRows))
	for _, c := range categoryRows {
		categoriesByID[c.ID] = c
	}

	// First link wins when a product maps to several categories.
	productCategory := make(map[uuid.UUID]models.Category)
	categoryCounts := make(map[uuid.UUID]int)
	for _, link := range linkRows {
		categoryCounts[link.CategoryID]++
		if _, ok := productCategory[link.ProductID]; ok {
			continue
		}
		if c, ok := categoriesByID[link.CategoryID]; ok {
			productCategory[link.ProductID] = c
		}
	}

	// Rows arrive position-ascending, so the first seen asset per product is
	// the thumbnail.
	mediaByProduct := make(map[uuid.UUID]models.MediaAsset)
	for _, m := range mediaRows {
		if m.ProductID == nil {
			continue
		}
		if _, ok := mediaByProduct[*m.ProductID]; !ok {
			mediaByProduct[*m.ProductID] = m
		}
	}

	type ratingAgg struct {
		total int
		count int
	}
	ratings := make(map[uuid.UUID]ratingAgg)
	for _, r := range reviewRows {
		if r.ProductID == nil {
			continue
		}
		agg := ratings[*r.ProductID]
		agg.total += r.Rating
		agg.count++
		ratings[*r.ProductID] = agg
	}

	items := make([]Product, 0, len(productRows))
	for _, p := range productRows {
		vendorName := fallbackVendorName
		if p.VendorID != nil {
			if v, ok := vendorsByID[*p.VendorID]; ok {
				vendorName = v.BusinessName
			}
		}

		var category *Category
		if c, ok := productCategory[p.ID]; ok {
			category = &Category{
				ID:          c.ID,
				Label:       c.Name,
				Slug:        c.Slug,
				Description: c.Description,
			}
		}

		var thumbnail *string
		if m, ok := mediaByProduct[p.ID]; ok {
			thumbnail = s.publicURL(m.Bucket, m.Path)
		}

		rating := Rating{}
		if agg, ok := ratings[p.ID]; ok && agg.count > 0 {
			avg := float64(agg.total) / float64(agg.count)
			rating = Rating{Average: &avg, Count: agg.count}
		}

		currency := p.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		items = append(items, Product{
			ID:           p.ID,
			Name:         p.Name,
			Summary:      p.Summary,
			VendorName:   vendorName,
			VendorID:     p.VendorID,
			Price:        money.ToNumber(p.BasePrice),
			Currency:     currency,
			Status:       p.Status,
			Category:     category,
			Rating:       rating,
			ThumbnailURL: thumbnail,
			CreatedAt:    p.CreatedAt,
		})
	}

	categories := make([]Category, 0, len(categoryRows))
	for _, c := range categoryRows {
		categories = append(categories, Category{
			ID:           c.ID,
			Label:        c.Name,
			Slug:         c.Slug,
			Description:  c.Description,
			ProductCount: categoryCounts[c.ID],
		})
	}

	return &Inventory{Products: items, Categories: categories}, nil
}

// FeaturedProducts is the inventory head used by the landing page.
func (s *service) FeaturedProducts(ctx context.Context, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	inventory, err := s.Inventory(ctx, limit)
	if err != nil {
		return nil, err
	}
	return inventory.Products, nil
}

// publicURL maps an object-store location onto the public CDN base. Returns
// nil when no base is configured.
func (s *service) publicURL(bucket, path string) *string {
	if s.storage.PublicBaseURL == "" || bucket == "" || path == "" {
		return nil
	}
	base := strings.TrimSuffix(s.storage.PublicBaseURL, "/")
	url := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", base, bucket, path)
	return &url
}
