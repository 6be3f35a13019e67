package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/types"
)

// Product is a vendor catalog listing. BasePrice maps a numeric column that
// some upstream writers populate as text; repositories normalize it through
// pkg/money before it reaches aggregation code.
type Product struct {
	ID          uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string        `gorm:"column:name;not null"`
	Slug        *string       `gorm:"column:slug"`
	Summary     *string       `gorm:"column:summary"`
	Description *string       `gorm:"column:description"`
	BasePrice   float64       `gorm:"column:base_price;not null;default:0"`
	Currency    string        `gorm:"column:currency;not null;default:'ZAR'"`
	Status      string        `gorm:"column:status;not null;default:'draft'"`
	Attributes  types.JSONMap `gorm:"column:attributes;type:jsonb;serializer:json"`
	VendorID    *uuid.UUID    `gorm:"column:vendor_id;type:uuid"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
