package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/config"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/timeseries"
)

type stubOrdersRepo struct {
	byVendor    []models.Order
	recent      []models.Order
	byVendorIDs []models.Order
	err         error
}

func (s *stubOrdersRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byVendor, nil
}

func (s *stubOrdersRepo) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.recent, nil
}

func (s *stubOrdersRepo) ListByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID, limit int) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byVendorIDs, nil
}

type stubVendorsRepo struct {
	byProfile map[uuid.UUID]*models.Vendor
	recent    []models.Vendor
	byName    []models.Vendor
	err       error
}

func (s *stubVendorsRepo) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*models.Vendor, error) {
	if s.err != nil {
		return nil, s.err
	}
	vendor, ok := s.byProfile[profileID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return vendor, nil
}

func (s *stubVendorsRepo) ListRecent(ctx context.Context, limit int) ([]models.Vendor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.recent, nil
}

func (s *stubVendorsRepo) ListByName(ctx context.Context, limit int) ([]models.Vendor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byName, nil
}

func (s *stubVendorsRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Vendor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.recent, nil
}

type stubProductsRepo struct {
	byVendor    []models.Product
	byVendorIDs []models.Product
	err         error
}

func (s *stubProductsRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byVendor, nil
}

func (s *stubProductsRepo) ListByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID, limit int) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byVendorIDs, nil
}

func (s *stubProductsRepo) ListRecent(ctx context.Context, limit int) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductsRepo) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (s *stubProductsRepo) ListCategoryLinks(ctx context.Context, productIDs []uuid.UUID) ([]models.ProductCategory, error) {
	return nil, nil
}

func (s *stubProductsRepo) ListMediaByProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.MediaAsset, error) {
	return nil, nil
}

func (s *stubProductsRepo) ListApprovedReviews(ctx context.Context, productIDs []uuid.UUID) ([]models.Review, error) {
	return nil, nil
}

type stubProfilesRepo struct {
	byIDs []models.Profile
	all   []models.Profile
	err   error
}

func (s *stubProfilesRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byIDs, nil
}

func (s *stubProfilesRepo) List(ctx context.Context, limit int) ([]models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.all, nil
}

func testCommerce() config.CommerceConfig {
	return config.CommerceConfig{
		CommissionRate:          0.12,
		DiscountThresholdAmount: 15000,
		DiscountPeriodMonths:    6,
		HighPerformerDiscount:   0.03,
	}
}

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := timeseries.Now
	timeseries.Now = func() time.Time { return at }
	t.Cleanup(func() { timeseries.Now = prev })
}

func newTestService(t *testing.T, orders *stubOrdersRepo, vendors *stubVendorsRepo, products *stubProductsRepo, profiles *stubProfilesRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Orders:   orders,
		Vendors:  vendors,
		Products: products,
		Profiles: profiles,
		Commerce: testCommerce(),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func timePtr(t time.Time) *time.Time { return &t }
func strPtr(s string) *string        { return &s }

func paidOrder(vendorID uuid.UUID, totalCents int, placed time.Time, channel, fulfillment string) models.Order {
	return models.Order{
		ID:                uuid.New(),
		OrderNumber:       "MM-" + uuid.NewString()[:8],
		VendorID:          &vendorID,
		TotalCents:        totalCents,
		PaymentStatus:     "Paid",
		FulfillmentStatus: fulfillment,
		Status:            "processing",
		Channel:           channel,
		PlacedAt:          timePtr(placed),
	}
}

func TestVendorDashboardAggregates(t *testing.T) {
	freezeClock(t, time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC))

	profileID := uuid.New()
	customerID := uuid.New()
	vendor := &models.Vendor{
		ID:           uuid.New(),
		BusinessName: "Karoo Crafts",
		Status:       "active",
		ProfileID:    &profileID,
	}

	may := time.Date(2026, time.May, 3, 9, 0, 0, 0, time.UTC)
	june := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)

	paidJune := paidOrder(vendor.ID, 250_000, june, "", "")
	paidJune.ProfileID = &customerID
	pendingJune := models.Order{
		ID:            uuid.New(),
		OrderNumber:   "MM-PEND",
		VendorID:      &vendor.ID,
		TotalCents:    100_000,
		PaymentStatus: "pending",
		Status:        "pending",
		Channel:       "Web",
		PlacedAt:      timePtr(june),
	}
	paidMay := paidOrder(vendor.ID, 500_000, may, "Web", "Delivered")

	ordersRepo := &stubOrdersRepo{byVendor: []models.Order{paidJune, pendingJune, paidMay}}
	vendorsRepo := &stubVendorsRepo{byProfile: map[uuid.UUID]*models.Vendor{profileID: vendor}}
	productsRepo := &stubProductsRepo{byVendor: []models.Product{{
		ID:        uuid.New(),
		Name:      "Rooibos Gift Box",
		BasePrice: 199.99,
		Status:    "published",
		VendorID:  &vendor.ID,
	}}}
	profilesRepo := &stubProfilesRepo{byIDs: []models.Profile{{
		ID:          customerID,
		DisplayName: strPtr("Thandi M"),
		Role:        "customer",
	}}}

	svc := newTestService(t, ordersRepo, vendorsRepo, productsRepo, profilesRepo)
	data, err := svc.VendorDashboard(context.Background(), profileID)
	if err != nil {
		t.Fatalf("VendorDashboard: %v", err)
	}

	if data.Vendor.Name != "Karoo Crafts" {
		t.Fatalf("unexpected vendor name %q", data.Vendor.Name)
	}
	if data.Vendor.CommissionRate != 0.12 {
		t.Fatalf("expected platform commission fallback, got %v", data.Vendor.CommissionRate)
	}
	if data.Metrics.Earnings != 7500 {
		t.Fatalf("expected earnings 7500, got %v", data.Metrics.Earnings)
	}
	if data.Metrics.PendingPayout != 1000 {
		t.Fatalf("expected pending payout 1000, got %v", data.Metrics.PendingPayout)
	}
	if data.Metrics.Orders != 2 {
		t.Fatalf("expected 2 paid orders, got %d", data.Metrics.Orders)
	}
	if data.Metrics.AvgOrderValue != 3750 {
		t.Fatalf("expected avg order value 3750, got %v", data.Metrics.AvgOrderValue)
	}
	if data.Metrics.DiscountPercent != 50 {
		t.Fatalf("expected discount percent 50, got %v", data.Metrics.DiscountPercent)
	}

	if len(data.Chart.Labels) != 6 || data.Chart.Labels[5] != "Jun" || data.Chart.Labels[4] != "May" {
		t.Fatalf("unexpected chart labels %v", data.Chart.Labels)
	}
	if data.Chart.Dataset[4] != 5000 || data.Chart.Dataset[5] != 2500 {
		t.Fatalf("unexpected chart dataset %v", data.Chart.Dataset)
	}

	if len(data.Orders) != 3 {
		t.Fatalf("expected 3 order rows, got %d", len(data.Orders))
	}
	if data.Orders[0].Customer != "Thandi M" {
		t.Fatalf("expected resolved customer name, got %q", data.Orders[0].Customer)
	}
	if data.Orders[1].Customer != "Customer" {
		t.Fatalf("expected fallback customer name, got %q", data.Orders[1].Customer)
	}

	if len(data.SalesStream) != 2 {
		t.Fatalf("expected 2 channel groups, got %d", len(data.SalesStream))
	}
	marketplace := data.SalesStream[0]
	if marketplace.Channel != "Marketplace" || marketplace.Ref != "MAR" {
		t.Fatalf("expected marketplace fallback channel first, got %+v", marketplace)
	}
	if marketplace.Status != "processing" {
		t.Fatalf("expected paid-order status fallback, got %q", marketplace.Status)
	}
	web := data.SalesStream[1]
	if web.Orders != 2 || web.Total != 6000 {
		t.Fatalf("unexpected web group %+v", web)
	}
	if web.Status != "Delivered" {
		t.Fatalf("expected last grouped order to win status, got %q", web.Status)
	}

	if len(data.Catalog) != 1 || data.Catalog[0].VendorName != "Karoo Crafts" || data.Catalog[0].Price != 199.99 {
		t.Fatalf("unexpected catalog %+v", data.Catalog)
	}
}

func TestVendorDashboardUsesVendorCommissionRate(t *testing.T) {
	freezeClock(t, time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC))

	profileID := uuid.New()
	rate := 0.08
	vendor := &models.Vendor{
		ID:             uuid.New(),
		BusinessName:   "Ubuntu Threads",
		CommissionRate: &rate,
		ProfileID:      &profileID,
	}

	svc := newTestService(t,
		&stubOrdersRepo{},
		&stubVendorsRepo{byProfile: map[uuid.UUID]*models.Vendor{profileID: vendor}},
		&stubProductsRepo{},
		&stubProfilesRepo{},
	)
	data, err := svc.VendorDashboard(context.Background(), profileID)
	if err != nil {
		t.Fatalf("VendorDashboard: %v", err)
	}
	if data.Vendor.CommissionRate != 0.08 {
		t.Fatalf("expected vendor rate 0.08, got %v", data.Vendor.CommissionRate)
	}
	if data.Metrics.AvgOrderValue != 0 {
		t.Fatalf("expected zero avg order value with no orders, got %v", data.Metrics.AvgOrderValue)
	}
	if data.Metrics.DiscountPercent != 0 {
		t.Fatalf("expected zero discount percent with no earnings, got %v", data.Metrics.DiscountPercent)
	}
}

func TestVendorDashboardDiscountPercentClamped(t *testing.T) {
	freezeClock(t, time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC))

	profileID := uuid.New()
	vendor := &models.Vendor{ID: uuid.New(), BusinessName: "Safari Goods", ProfileID: &profileID}
	june := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	svc := newTestService(t,
		&stubOrdersRepo{byVendor: []models.Order{paidOrder(vendor.ID, 5_000_000, june, "Web", "")}},
		&stubVendorsRepo{byProfile: map[uuid.UUID]*models.Vendor{profileID: vendor}},
		&stubProductsRepo{},
		&stubProfilesRepo{},
	)
	data, err := svc.VendorDashboard(context.Background(), profileID)
	if err != nil {
		t.Fatalf("VendorDashboard: %v", err)
	}
	if data.Metrics.DiscountPercent != 100 {
		t.Fatalf("expected discount percent clamped to 100, got %v", data.Metrics.DiscountPercent)
	}
}

func TestVendorDashboardAuthErrors(t *testing.T) {
	svc := newTestService(t, &stubOrdersRepo{}, &stubVendorsRepo{}, &stubProductsRepo{}, &stubProfilesRepo{})

	_, err := svc.VendorDashboard(context.Background(), uuid.Nil)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}

	_, err = svc.VendorDashboard(context.Background(), uuid.New())
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if appErr.Message() != "Vendor profile not found" {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
}

func TestVendorDashboardWrapsQueryFailures(t *testing.T) {
	freezeClock(t, time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC))

	profileID := uuid.New()
	vendor := &models.Vendor{ID: uuid.New(), BusinessName: "Safari Goods", ProfileID: &profileID}

	svc := newTestService(t,
		&stubOrdersRepo{err: errors.New("connection refused")},
		&stubVendorsRepo{byProfile: map[uuid.UUID]*models.Vendor{profileID: vendor}},
		&stubProductsRepo{},
		&stubProfilesRepo{},
	)
	_, err := svc.VendorDashboard(context.Background(), profileID)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if appErr.Message() != "Failed to load vendor orders" {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
}

func TestFormatStatus(t *testing.T) {
	cases := []struct {
		name  string
		order models.Order
		want  string
	}{
		{"paid with fulfillment", models.Order{PaymentStatus: "PAID", FulfillmentStatus: "Shipped", Status: "processing"}, "Shipped"},
		{"paid without fulfillment", models.Order{PaymentStatus: "paid", Status: "processing"}, "processing"},
		{"paid bare", models.Order{PaymentStatus: "paid"}, "Paid"},
		{"unpaid fulfilled", models.Order{PaymentStatus: "pending", Status: "Fulfilled"}, "Fulfilled"},
		{"unpaid with status", models.Order{PaymentStatus: "pending", Status: "awaiting_stock"}, "awaiting_stock"},
		{"unpaid bare", models.Order{PaymentStatus: "pending"}, "Pending"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatStatus(tc.order); got != tc.want {
				t.Fatalf("formatStatus = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAdminDashboardAggregates(t *testing.T) {
	freezeClock(t, time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC))

	june := time.Date(2026, time.June, 5, 12, 0, 0, 0, time.UTC)
	old := time.Date(2020, time.January, 5, 12, 0, 0, 0, time.UTC)

	vendorA := models.Vendor{ID: uuid.New(), BusinessName: "Amara Foods", Status: "Active", CreatedAt: june}
	vendorB := models.Vendor{ID: uuid.New(), BusinessName: "Bloom Traders", Status: "pending", CreatedAt: june}

	orderA := paidOrder(vendorA.ID, 200_000, june, "Web", "Delivered")
	orderB := models.Order{
		ID:            uuid.New(),
		OrderNumber:   "MM-B1",
		VendorID:      &vendorB.ID,
		TotalCents:    50_000,
		PaymentStatus: "pending",
		Status:        "pending",
		PlacedAt:      timePtr(june),
	}
	orphan := models.Order{
		ID:            uuid.New(),
		OrderNumber:   "MM-ORPHAN",
		TotalCents:    10_000,
		PaymentStatus: "paid",
		Status:        "processing",
		PlacedAt:      timePtr(old),
	}

	svc := newTestService(t,
		&stubOrdersRepo{recent: []models.Order{orderA, orderB, orphan}},
		&stubVendorsRepo{recent: []models.Vendor{vendorA, vendorB}},
		&stubProductsRepo{},
		&stubProfilesRepo{all: []models.Profile{
			{ID: uuid.New(), Role: "customer"},
			{ID: uuid.New(), Role: "customer"},
			{ID: uuid.New(), Role: "admin"},
		}},
	)

	data, err := svc.AdminDashboard(context.Background())
	if err != nil {
		t.Fatalf("AdminDashboard: %v", err)
	}

	if len(data.KPIs) != 4 {
		t.Fatalf("expected 4 KPIs, got %d", len(data.KPIs))
	}
	if data.KPIs[0].Value != "R2,100" {
		t.Fatalf("unexpected GMV KPI %q", data.KPIs[0].Value)
	}
	if data.KPIs[1].Value != "1" {
		t.Fatalf("expected 1 active vendor, got %q", data.KPIs[1].Value)
	}
	if data.KPIs[2].Value != "2" {
		t.Fatalf("expected 2 customers, got %q", data.KPIs[2].Value)
	}
	if data.KPIs[3].Value != "R252" {
		t.Fatalf("unexpected commissions KPI %q", data.KPIs[3].Value)
	}
	if data.KPIs[3].Helper != "12% rate" {
		t.Fatalf("unexpected commissions helper %q", data.KPIs[3].Helper)
	}

	if data.Charts.Onboarding.Dataset[5] != 2 {
		t.Fatalf("expected 2 vendors onboarded in current month, got %v", data.Charts.Onboarding.Dataset)
	}
	if data.Charts.Commissions.Dataset[5] != 240 {
		t.Fatalf("expected current-month commissions 240, got %v", data.Charts.Commissions.Dataset)
	}

	if len(data.SalesStream) != 3 {
		t.Fatalf("expected 3 stream groups, got %d", len(data.SalesStream))
	}
	if data.SalesStream[0].Vendor != "Amara Foods" || data.SalesStream[0].Ref != "AMA" {
		t.Fatalf("unexpected first stream row %+v", data.SalesStream[0])
	}
	orphanRow := data.SalesStream[2]
	if orphanRow.Vendor != "Unassigned vendor" || orphanRow.Ref != "VEN" {
		t.Fatalf("expected unassigned fallback, got %+v", orphanRow)
	}
}

func TestAdminSalesStreamCapsGroups(t *testing.T) {
	freezeClock(t, time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC))

	june := time.Date(2026, time.June, 5, 12, 0, 0, 0, time.UTC)
	var orderRows []models.Order
	for i := 0; i < 10; i++ {
		vendorID := uuid.New()
		orderRows = append(orderRows, paidOrder(vendorID, 10_000, june, "Web", ""))
	}

	svc := newTestService(t,
		&stubOrdersRepo{recent: orderRows},
		&stubVendorsRepo{},
		&stubProductsRepo{},
		&stubProfilesRepo{},
	)
	data, err := svc.AdminDashboard(context.Background())
	if err != nil {
		t.Fatalf("AdminDashboard: %v", err)
	}
	if len(data.SalesStream) != 6 {
		t.Fatalf("expected stream capped at 6, got %d", len(data.SalesStream))
	}
}

func TestAdminVendorSummaries(t *testing.T) {
	vendorA := models.Vendor{ID: uuid.New(), BusinessName: "Amara Foods", Status: "active"}
	vendorB := models.Vendor{ID: uuid.New(), BusinessName: "Bloom Traders", Status: "suspended"}
	june := time.Date(2026, time.June, 5, 12, 0, 0, 0, time.UTC)

	unpaid := models.Order{
		ID:            uuid.New(),
		VendorID:      &vendorA.ID,
		TotalCents:    10_000,
		PaymentStatus: "pending",
		PlacedAt:      timePtr(june),
	}

	svc := newTestService(t,
		&stubOrdersRepo{byVendorIDs: []models.Order{
			paidOrder(vendorA.ID, 200_000, june, "Web", ""),
			unpaid,
		}},
		&stubVendorsRepo{byName: []models.Vendor{vendorA, vendorB}},
		&stubProductsRepo{byVendorIDs: []models.Product{
			{ID: uuid.New(), Name: "P1", VendorID: &vendorA.ID},
			{ID: uuid.New(), Name: "P2", VendorID: &vendorA.ID},
			{ID: uuid.New(), Name: "P3", VendorID: &vendorB.ID},
			{ID: uuid.New(), Name: "Orphan"},
		}},
		&stubProfilesRepo{},
	)

	summaries, err := svc.AdminVendorSummaries(context.Background(), 0)
	if err != nil {
		t.Fatalf("AdminVendorSummaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Name != "Amara Foods" || summaries[0].ListingCount != 2 || summaries[0].GMV != 2000 {
		t.Fatalf("unexpected first summary %+v", summaries[0])
	}
	if summaries[1].ListingCount != 1 || summaries[1].GMV != 0 {
		t.Fatalf("unexpected second summary %+v", summaries[1])
	}
}

func TestVendorOrdersResolvesCustomers(t *testing.T) {
	freezeClock(t, time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC))

	profileID := uuid.New()
	customerID := uuid.New()
	vendor := &models.Vendor{ID: uuid.New(), BusinessName: "Karoo Crafts", ProfileID: &profileID}

	june := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)
	order := paidOrder(vendor.ID, 150_000, june, "Web", "Shipped")
	order.ProfileID = &customerID

	svc := newTestService(t,
		&stubOrdersRepo{byVendor: []models.Order{order}},
		&stubVendorsRepo{byProfile: map[uuid.UUID]*models.Vendor{profileID: vendor}},
		&stubProductsRepo{},
		&stubProfilesRepo{byIDs: []models.Profile{{ID: customerID, DisplayName: strPtr("Sipho N"), Role: "customer"}}},
	)

	rows, err := svc.VendorOrders(context.Background(), profileID, 0)
	if err != nil {
		t.Fatalf("VendorOrders: %v", err)
	}
	if len(rows) != 1 || rows[0].Customer != "Sipho N" || rows[0].Value != 1500 {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if rows[0].Status != "Shipped" {
		t.Fatalf("unexpected status %q", rows[0].Status)
	}
}
