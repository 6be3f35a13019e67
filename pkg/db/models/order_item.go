package models

import (
	"github.com/google/uuid"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/types"
)

// OrderItem is a single order line.
type OrderItem struct {
	ID             uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID        *uuid.UUID    `gorm:"column:order_id;type:uuid"`
	ProductID      *uuid.UUID    `gorm:"column:product_id;type:uuid"`
	VariantID      *uuid.UUID    `gorm:"column:variant_id;type:uuid"`
	Quantity       int           `gorm:"column:quantity;not null;default:1"`
	UnitPriceCents int           `gorm:"column:unit_price_cents;not null"`
	DiscountCents  int           `gorm:"column:discount_cents;not null;default:0"`
	TaxCents       int           `gorm:"column:tax_cents;not null;default:0"`
	Metadata       types.JSONMap `gorm:"column:metadata;type:jsonb;serializer:json"`
}

func (OrderItem) TableName() string { return "order_items" }
