package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaAsset points at an object-store file attached to a product.
type MediaAsset struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Bucket    string     `gorm:"column:bucket;not null"`
	Path      string     `gorm:"column:path;not null"`
	MediaType string     `gorm:"column:media_type;not null;default:'image'"`
	Position  int        `gorm:"column:position;not null;default:0"`
	ProductID *uuid.UUID `gorm:"column:product_id;type:uuid"`
	VariantID *uuid.UUID `gorm:"column:variant_id;type:uuid"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (MediaAsset) TableName() string { return "media_assets" }
