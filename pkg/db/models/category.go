package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a storefront navigation category.
type Category struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string     `gorm:"column:name;not null"`
	Slug        string     `gorm:"column:slug;not null"`
	Description *string    `gorm:"column:description"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	ParentID    *uuid.UUID `gorm:"column:parent_id;type:uuid"`
	SortOrder   int        `gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Category) TableName() string { return "categories" }

// ProductCategory links products to categories.
type ProductCategory struct {
	ProductID  uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey"`
}

func (ProductCategory) TableName() string { return "product_category_map" }
