package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// VendorApplication captures a prospective vendor's onboarding submission.
// Document columns store object paths supplied by the upload collaborator.
type VendorApplication struct {
	ID                    uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BusinessName          string         `gorm:"column:business_name;not null"`
	FullName              string         `gorm:"column:full_name;not null"`
	Email                 string         `gorm:"column:email;not null"`
	Phone                 string         `gorm:"column:phone;not null"`
	Whatsapp              string         `gorm:"column:whatsapp;not null"`
	SocialHandle          *string        `gorm:"column:social_handle"`
	Location              string         `gorm:"column:location;not null"`
	BusinessAddress       string         `gorm:"column:business_address;not null"`
	BusinessDescription   string         `gorm:"column:business_description;not null"`
	StoreDescription      string         `gorm:"column:store_description;not null"`
	OperatingHours        string         `gorm:"column:operating_hours;not null"`
	DeliveryRules         string         `gorm:"column:delivery_rules;not null"`
	DeliveryFee           string         `gorm:"column:delivery_fee;not null"`
	ShoppingMethods       pq.StringArray `gorm:"column:shopping_methods;type:text[]"`
	PayoutMethod          string         `gorm:"column:payout_method;not null"`
	CIPCRegistered        bool           `gorm:"column:cipc_registered;not null;default:false"`
	CompanyRegNumber      *string        `gorm:"column:company_reg_number"`
	TaxNumber             *string        `gorm:"column:tax_number"`
	IDNumber              string         `gorm:"column:id_number;not null"`
	LogoFileName          *string        `gorm:"column:logo_file_name"`
	StoreBannerFileName   *string        `gorm:"column:store_banner_file_name"`
	IDDocumentFileName    *string        `gorm:"column:id_document_file_name"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (VendorApplication) TableName() string { return "vendor_applications" }
