package registrations

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/enums"
)

func setupIntakeTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	applications := `
CREATE TABLE IF NOT EXISTS vendor_applications (
  id TEXT PRIMARY KEY,
  business_name TEXT NOT NULL,
  full_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  whatsapp TEXT NOT NULL,
  social_handle TEXT,
  location TEXT NOT NULL,
  business_address TEXT NOT NULL,
  business_description TEXT NOT NULL,
  store_description TEXT NOT NULL,
  operating_hours TEXT NOT NULL,
  delivery_rules TEXT NOT NULL,
  delivery_fee TEXT NOT NULL,
  shopping_methods TEXT,
  payout_method TEXT NOT NULL,
  cipc_registered INTEGER NOT NULL DEFAULT 0,
  company_reg_number TEXT,
  tax_number TEXT,
  id_number TEXT NOT NULL,
  logo_file_name TEXT,
  store_banner_file_name TEXT,
  id_document_file_name TEXT,
  created_at DATETIME
);`
	registrationRequests := `
CREATE TABLE IF NOT EXISTS cipc_registration_requests (
  id TEXT PRIMARY KEY,
  applicant_name TEXT NOT NULL,
  applicant_email TEXT NOT NULL,
  applicant_phone TEXT NOT NULL,
  business_structure TEXT NOT NULL,
  name_option_one TEXT NOT NULL,
  name_option_two TEXT,
  directors TEXT,
  address TEXT NOT NULL,
  additional_notes TEXT,
  id_document_path TEXT,
  proof_of_address_path TEXT,
  status TEXT NOT NULL DEFAULT 'received',
  created_at DATETIME
);`
	require.NoError(t, db.Exec(applications).Error)
	require.NoError(t, db.Exec(registrationRequests).Error)
	return db
}

func TestRepositoryCreateVendorApplication(t *testing.T) {
	db := setupIntakeTestDB(t)
	repo := NewRepository(db)

	stored, err := repo.CreateVendorApplication(context.Background(), &models.VendorApplication{
		ID:                  uuid.New(),
		BusinessName:        "Karoo Crafts",
		FullName:            "Lindiwe Dlamini",
		Email:               "lindiwe@example.co.za",
		Phone:               "+27821234567",
		Whatsapp:            "+27821234567",
		Location:            "Cape Town",
		BusinessAddress:     "12 Long Street",
		BusinessDescription: "Handmade crafts",
		StoreDescription:    "Local craft goods",
		OperatingHours:      "Mon-Fri 9-17",
		DeliveryRules:       "Courier nationwide",
		DeliveryFee:         "R60 flat",
		ShoppingMethods:     []string{"delivery"},
		PayoutMethod:        "eft",
		IDNumber:            "8001015009087",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)

	var count int64
	require.NoError(t, db.Table("vendor_applications").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRepositoryCreateCipcRegistration(t *testing.T) {
	db := setupIntakeTestDB(t)
	repo := NewRepository(db)

	stored, err := repo.CreateCipcRegistration(context.Background(), &models.CipcRegistration{
		ID:                uuid.New(),
		ApplicantName:     "Sipho Nkosi",
		ApplicantEmail:    "sipho@example.co.za",
		ApplicantPhone:    "+27831234567",
		BusinessStructure: enums.BusinessStructurePty,
		NameOptionOne:     "Nkosi Holdings",
		Directors:         []string{"Sipho Nkosi", "Thandi Nkosi"},
		Address:           "45 Vilakazi Street",
		Status:            StatusReceived,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)

	var got models.CipcRegistration
	require.NoError(t, db.Table("cipc_registration_requests").First(&got, "id = ?", stored.ID).Error)
	assert.Equal(t, "received", got.Status)
}
