package dashboard

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/lwandile-dev/mzansimarket-backend/internal/profiles"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/money"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/timeseries"
)

const adminChartMonths = 6

var kpiPrinter = message.NewPrinter(language.English)

// AdminDashboard builds the platform-wide dashboard payload. Commission KPIs
// use the flat platform rate, not per-vendor rates.
func (s *service) AdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	var (
		orderRows   []models.Order
		vendorRows  []models.Vendor
		profileRows []models.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.orders.ListRecent(gctx, adminOrdersLimit)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load orders")
		}
		orderRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.vendors.ListRecent(gctx, adminVendorsLimit)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendors")
		}
		vendorRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.profiles.List(gctx, profiles.MaxProfileList)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load profiles")
		}
		profileRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profileMap := profileMapByID(profileRows)
	vendorMap := make(map[uuid.UUID]models.Vendor, len(vendorRows))
	for _, v := range vendorRows {
		vendorMap[v.ID] = v
	}

	var gmv float64
	commissionChart := timeseries.MonthBuckets(adminChartMonths)
	for _, o := range orderRows {
		if !isPaid(o) {
			continue
		}
		amount := money.CentsToRand(o.TotalCents)
		gmv += amount
		timeseries.AddAmount(commissionChart, o.PlacedAt, amount)
	}
	commissionIncome := gmv * s.commerce.CommissionRate

	onboardingChart := timeseries.MonthBuckets(adminChartMonths)
	for _, v := range vendorRows {
		created := v.CreatedAt
		timeseries.AddCount(onboardingChart, &created)
	}

	activeVendors := 0
	for _, v := range vendorRows {
		if strings.EqualFold(v.Status, "active") {
			activeVendors++
		}
	}
	customers := 0
	for _, p := range profileRows {
		if p.Role == "customer" {
			customers++
		}
	}

	commissionDataset := timeseries.Totals(commissionChart)
	for i := range commissionDataset {
		commissionDataset[i] = math.Round(commissionDataset[i]*s.commerce.CommissionRate*100) / 100
	}

	return &AdminDashboardData{
		KPIs: []KPI{
			{Label: "GMV (6m)", Value: formatRand(gmv), Helper: "Paid orders"},
			{Label: "Active vendors", Value: fmt.Sprintf("%d", activeVendors), Helper: "Across marketplace"},
			{Label: "Customers", Value: fmt.Sprintf("%d", customers), Helper: "Profiles"},
			{Label: "Net commissions", Value: formatRand(commissionIncome), Helper: fmt.Sprintf("%d%% rate", int(math.Round(s.commerce.CommissionRate*100)))},
		},
		Charts: AdminCharts{
			Onboarding: ChartSeries{
				Labels:  timeseries.Labels(onboardingChart),
				Dataset: timeseries.Totals(onboardingChart),
			},
			Commissions: ChartSeries{
				Labels:  timeseries.Labels(commissionChart),
				Dataset: commissionDataset,
			},
		},
		Orders:      buildOrdersList(orderRows, profileMap, DefaultOrderRows),
		SalesStream: adminSalesStream(orderRows, vendorMap),
	}, nil
}

// AdminVendorSummaries rolls every listed vendor up to listing count and
// paid-order GMV.
func (s *service) AdminVendorSummaries(ctx context.Context, limit int) ([]AdminVendorSummary, error) {
	if limit <= 0 {
		limit = DefaultVendorSummaries
	}
	vendorRows, err := s.vendors.ListByName(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendors")
	}

	vendorIDs := make([]uuid.UUID, 0, len(vendorRows))
	for _, v := range vendorRows {
		vendorIDs = append(vendorIDs, v.ID)
	}

	var (
		productRows []models.Product
		orderRows   []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.products.ListByVendorIDs(gctx, vendorIDs, 0)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load products")
		}
		productRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.orders.ListByVendorIDs(gctx, vendorIDs, 500)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to load vendor GMV")
		}
		orderRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	listingCounts := make(map[uuid.UUID]int)
	for _, p := range productRows {
		if p.VendorID == nil {
			continue
		}
		listingCounts[*p.VendorID]++
	}
	gmvByVendor := make(map[uuid.UUID]float64)
	for _, o := range orderRows {
		if o.VendorID == nil || !isPaid(o) {
			continue
		}
		gmvByVendor[*o.VendorID] += money.CentsToRand(o.TotalCents)
	}

	summaries := make([]AdminVendorSummary, 0, len(vendorRows))
	for _, v := range vendorRows {
		summaries = append(summaries, AdminVendorSummary{
			ID:           v.ID,
			Name:         v.BusinessName,
			Status:       v.Status,
			ListingCount: listingCounts[v.ID],
			GMV:          gmvByVendor[v.ID],
		})
	}
	return summaries, nil
}

// adminSalesStream groups orders per vendor and keeps the first six groups in
// order of appearance.
func adminSalesStream(orderRows []models.Order, vendorMap map[uuid.UUID]models.Vendor) []SalesStreamEntry {
	type vendorGroup struct {
		vendorName string
		hasVendor  bool
		channel    string
		total      float64
		orders     int
		status     string
	}
	groups := make(map[string]*vendorGroup)
	var keys []string
	for _, o := range orderRows {
		key := o.ID.String()
		var vendorName string
		var hasVendor bool
		if o.VendorID != nil {
			key = o.VendorID.String()
			if v, ok := vendorMap[*o.VendorID]; ok {
				vendorName = v.BusinessName
				hasVendor = true
			}
		}
		group, ok := groups[key]
		if !ok {
			group = &vendorGroup{
				vendorName: vendorName,
				hasVendor:  hasVendor,
				channel:    orderChannel(o),
			}
			groups[key] = group
			keys = append(keys, key)
		}
		group.total += money.CentsToRand(o.TotalCents)
		group.orders++
		group.status = formatStatus(o)
	}

	if len(keys) > adminSalesStreamRows {
		keys = keys[:adminSalesStreamRows]
	}
	stream := make([]SalesStreamEntry, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		vendorName := fallbackVendorName
		ref := refFrom(fallbackVendorRef)
		if group.hasVendor {
			vendorName = group.vendorName
			ref = refFrom(group.vendorName)
		}
		stream = append(stream, SalesStreamEntry{
			ID:      key,
			Vendor:  vendorName,
			Ref:     ref,
			Channel: group.channel,
			Orders:  group.orders,
			Total:   group.total,
			Status:  group.status,
		})
	}
	return stream
}

// formatRand renders a rand amount with thousand separators. Fraction digits
// cap at three to keep float noise out of the KPI strings.
func formatRand(v float64) string {
	return "R" + kpiPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
