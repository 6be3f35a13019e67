package dashboard

import (
	"time"

	"github.com/google/uuid"
)

// DashboardOrder is a single row in the recent-orders widget.
type DashboardOrder struct {
	ID          uuid.UUID  `json:"id"`
	OrderNumber string     `json:"order_number"`
	Customer    string     `json:"customer"`
	Value       float64    `json:"value"`
	Status      string     `json:"status"`
	PlacedAt    *time.Time `json:"placed_at"`
}

// SalesStreamEntry is one grouped row of the live sales feed. On the vendor
// dashboard rows group by channel; on the admin dashboard they group by
// vendor.
type SalesStreamEntry struct {
	ID      string  `json:"id"`
	Vendor  string  `json:"vendor"`
	Ref     string  `json:"ref"`
	Channel string  `json:"channel"`
	Orders  int     `json:"orders"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
}

// ChartSeries is a label-aligned series for a bar or line chart.
type ChartSeries struct {
	Labels  []string  `json:"labels"`
	Dataset []float64 `json:"dataset"`
}

// CatalogProduct is a vendor catalog row as the dashboard renders it.
type CatalogProduct struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	VendorName string    `json:"vendor_name"`
}

// VendorInfo identifies the vendor whose dashboard is being rendered.
type VendorInfo struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	CommissionRate float64   `json:"commission_rate"`
}

// VendorMetrics carries the headline vendor numbers. Earnings counts paid
// orders only; PendingPayout is everything not yet paid.
type VendorMetrics struct {
	Earnings        float64 `json:"earnings"`
	Orders          int     `json:"orders"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	PendingPayout   float64 `json:"pending_payout"`
	DiscountPercent float64 `json:"discount_percent"`
}

// VendorDashboardData is the full vendor dashboard payload.
type VendorDashboardData struct {
	Vendor      VendorInfo         `json:"vendor"`
	Metrics     VendorMetrics      `json:"metrics"`
	Chart       ChartSeries        `json:"chart"`
	Orders      []DashboardOrder   `json:"orders"`
	SalesStream []SalesStreamEntry `json:"sales_stream"`
	Catalog     []CatalogProduct   `json:"catalog"`
}

// KPI is a single formatted admin headline figure.
type KPI struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Helper string `json:"helper,omitempty"`
}

// AdminCharts bundles the two admin chart series.
type AdminCharts struct {
	Onboarding  ChartSeries `json:"onboarding"`
	Commissions ChartSeries `json:"commissions"`
}

// AdminDashboardData is the full admin dashboard payload.
type AdminDashboardData struct {
	KPIs        []KPI              `json:"kpis"`
	Charts      AdminCharts        `json:"charts"`
	Orders      []DashboardOrder   `json:"orders"`
	SalesStream []SalesStreamEntry `json:"sales_stream"`
}

// AdminVendorSummary is one row of the admin vendor roll-up table.
type AdminVendorSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	ListingCount int       `json:"listing_count"`
	GMV          float64   `json:"gmv"`
}
