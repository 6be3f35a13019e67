package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/money"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/timeseries"
)

// VendorDashboard builds the complete dashboard payload for the vendor owned
// by the calling profile.
func (s *service) VendorDashboard(ctx context.Context, profileID uuid.UUID) (*VendorDashboardData, error) {
	vendor, err := s.vendorContext(ctx, profileID)
	if err != nil {
		return nil, err
	}

	var (
		orderRows   []models.Order
		catalogRows []models.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.orders.ListByVendor(gctx, vendor.ID, 50)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendor orders")
		}
		orderRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.products.ListByVendor(gctx, vendor.ID, 50)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendor catalog")
		}
		catalogRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profileMap, err := s.loadProfileMap(ctx, orderRows)
	if err != nil {
		return nil, err
	}

	var (
		earnings      float64
		pendingPayout float64
		paidCount     int
	)
	chart := timeseries.MonthBuckets(s.commerce.DiscountPeriodMonths)
	for _, o := range orderRows {
		amount := money.CentsToRand(o.TotalCents)
		if isPaid(o) {
			earnings += amount
			paidCount++
			timeseries.AddAmount(chart, o.PlacedAt, amount)
		} else {
			pendingPayout += amount
		}
	}

	avgOrderValue := 0.0
	if paidCount > 0 {
		avgOrderValue = earnings / float64(paidCount)
	}
	discountPercent := clampPercent(earnings / s.commerce.DiscountThresholdAmount * 100)

	commissionRate := s.commerce.CommissionRate
	if vendor.CommissionRate != nil {
		commissionRate = *vendor.CommissionRate
	}

	return &VendorDashboardData{
		Vendor: VendorInfo{
			ID:             vendor.ID,
			Name:           vendor.BusinessName,
			CommissionRate: commissionRate,
		},
		Metrics: VendorMetrics{
			Earnings:        earnings,
			Orders:          paidCount,
			AvgOrderValue:   avgOrderValue,
			PendingPayout:   pendingPayout,
			DiscountPercent: discountPercent,
		},
		Chart: ChartSeries{
			Labels:  timeseries.Labels(chart),
			Dataset: roundSeries(timeseries.Totals(chart)),
		},
		Orders:      buildOrdersList(orderRows, profileMap, DefaultOrderRows),
		SalesStream: vendorSalesStream(vendor, orderRows),
		Catalog:     projectCatalog(catalogRows, vendor.BusinessName),
	}, nil
}

// VendorCatalog lists the vendor's products in dashboard shape.
func (s *service) VendorCatalog(ctx context.Context, profileID uuid.UUID, limit int) ([]CatalogProduct, error) {
	vendor, err := s.vendorContext(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultCatalogLimit
	}
	rows, err := s.products.ListByVendor(ctx, vendor.ID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendor catalog")
	}
	return projectCatalog(rows, vendor.BusinessName), nil
}

// VendorOrders lists the vendor's most recent orders with customer names
// resolved.
func (s *service) VendorOrders(ctx context.Context, profileID uuid.UUID, limit int) ([]DashboardOrder, error) {
	vendor, err := s.vendorContext(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultOrderListLimit
	}
	orderRows, err := s.orders.ListByVendor(ctx, vendor.ID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendor orders")
	}
	profileMap, err := s.loadProfileMap(ctx, orderRows)
	if err != nil {
		return nil, err
	}
	return buildOrdersList(orderRows, profileMap, limit), nil
}

// vendorSalesStream groups the vendor's orders per sales channel. The status
// column reflects the most recently processed order in each channel.
func vendorSalesStream(vendor *models.Vendor, orderRows []models.Order) []SalesStreamEntry {
	type channelGroup struct {
		channel string
		total   float64
		orders  int
		status  string
	}
	groups := make(map[string]*channelGroup)
	var keys []string
	for _, o := range orderRows {
		channel := orderChannel(o)
		group, ok := groups[channel]
		if !ok {
			group = &channelGroup{channel: channel}
			groups[channel] = group
			keys = append(keys, channel)
		}
		group.total += money.CentsToRand(o.TotalCents)
		group.orders++
		group.status = formatStatus(o)
	}

	stream := make([]SalesStreamEntry, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		stream = append(stream, SalesStreamEntry{
			ID:      fmt.Sprintf("%s-%s", vendor.ID, group.channel),
			Vendor:  vendor.BusinessName,
			Ref:     refFrom(group.channel),
			Channel: group.channel,
			Orders:  group.orders,
			Total:   group.total,
			Status:  group.status,
		})
	}
	return stream
}

func projectCatalog(rows []models.Product, vendorName string) []CatalogProduct {
	catalog := make([]CatalogProduct, 0, len(rows))
	for _, p := range rows {
		catalog = append(catalog, CatalogProduct{
			ID:         p.ID,
			Name:       p.Name,
			Price:      money.ToNumber(p.BasePrice),
			Status:     p.Status,
			VendorName: vendorName,
		})
	}
	return catalog
}

func clampPercent(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func roundSeries(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Round(v*100) / 100
	}
	return out
}
