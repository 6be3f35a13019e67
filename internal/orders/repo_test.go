package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	ordersTable := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL,
  profile_id TEXT,
  vendor_id TEXT,
  currency TEXT NOT NULL DEFAULT 'ZAR',
  subtotal_cents INTEGER NOT NULL DEFAULT 0,
  discount_cents INTEGER NOT NULL DEFAULT 0,
  shipping_cents INTEGER NOT NULL DEFAULT 0,
  tax_cents INTEGER NOT NULL DEFAULT 0,
  total_cents INTEGER NOT NULL DEFAULT 0,
  payment_status TEXT NOT NULL DEFAULT 'pending',
  fulfillment_status TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  channel TEXT,
  placed_at DATETIME,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ordersTable).Error)
	return db
}

func createOrder(t *testing.T, db *gorm.DB, vendorID uuid.UUID, number string, totalCents int, placed time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:            uuid.New(),
		OrderNumber:   number,
		VendorID:      &vendorID,
		TotalCents:    totalCents,
		PaymentStatus: "paid",
		Status:        "processing",
		PlacedAt:      &placed,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryListByVendor(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	vendorA := uuid.New()
	vendorB := uuid.New()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	createOrder(t, db, vendorA, "MM-1001", 5000, base)
	createOrder(t, db, vendorA, "MM-1002", 7000, base.Add(48*time.Hour))
	createOrder(t, db, vendorB, "MM-2001", 9000, base.Add(24*time.Hour))

	rows, err := repo.ListByVendor(ctx, vendorA, 50)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "MM-1002", rows[0].OrderNumber)
	assert.Equal(t, "MM-1001", rows[1].OrderNumber)
}

func TestRepositoryListByVendorClampsLimit(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < MaxVendorOrders+5; i++ {
		createOrder(t, db, vendorID, "MM-batch", 1000, base.Add(time.Duration(i)*time.Minute))
	}

	rows, err := repo.ListByVendor(ctx, vendorID, 10_000)
	require.NoError(t, err)
	assert.Len(t, rows, MaxVendorOrders)
}

func TestRepositoryListRecentOrdersNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	createOrder(t, db, uuid.New(), "MM-old", 1000, base)
	createOrder(t, db, uuid.New(), "MM-new", 2000, base.Add(time.Hour))

	rows, err := repo.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "MM-new", rows[0].OrderNumber)
}

func TestRepositoryListByVendorIDs(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	vendorA := uuid.New()
	vendorB := uuid.New()
	vendorC := uuid.New()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	createOrder(t, db, vendorA, "MM-A", 1000, base)
	createOrder(t, db, vendorB, "MM-B", 2000, base)
	createOrder(t, db, vendorC, "MM-C", 3000, base)

	rows, err := repo.ListByVendorIDs(ctx, []uuid.UUID{vendorA, vendorB}, 500)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	empty, err := repo.ListByVendorIDs(ctx, nil, 500)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
