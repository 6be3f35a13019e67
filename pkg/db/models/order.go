package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the checkout-produced order row. The dashboard side only ever
// reads these; creation happens in the checkout collaborator. TotalCents is
// authoritative for every monetary aggregate, line items are never re-summed.
type Order struct {
	ID                uuid.UUID   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber       string      `gorm:"column:order_number;not null"`
	ProfileID         *uuid.UUID  `gorm:"column:profile_id;type:uuid"`
	VendorID          *uuid.UUID  `gorm:"column:vendor_id;type:uuid"`
	Currency          string      `gorm:"column:currency;not null;default:'ZAR'"`
	SubtotalCents     int         `gorm:"column:subtotal_cents;not null;default:0"`
	DiscountCents     int         `gorm:"column:discount_cents;not null;default:0"`
	ShippingCents     int         `gorm:"column:shipping_cents;not null;default:0"`
	TaxCents          int         `gorm:"column:tax_cents;not null;default:0"`
	TotalCents        int         `gorm:"column:total_cents;not null;default:0"`
	PaymentStatus     string      `gorm:"column:payment_status;not null;default:'pending'"`
	FulfillmentStatus string      `gorm:"column:fulfillment_status"`
	Status            string      `gorm:"column:status;not null;default:'pending'"`
	Channel           string      `gorm:"column:channel"`
	PlacedAt          *time.Time  `gorm:"column:placed_at"`
	Items             []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string { return "orders" }
