package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the auth-owned profile row; this service reads it for
// display names and customer counts only.
type Profile struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	DisplayName     *string   `gorm:"column:display_name"`
	Role            string    `gorm:"column:role;not null;default:'customer'"`
	Phone           *string   `gorm:"column:phone"`
	PreferredLocale string    `gorm:"column:preferred_locale;not null;default:'en-ZA'"`
	MarketingOptIn  bool      `gorm:"column:marketing_opt_in;not null;default:false"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string { return "profiles" }
