package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/types"
)

// Vendor is an approved marketplace seller. CommissionRate may be null, in
// which case the platform default rate applies.
type Vendor struct {
	ID                 uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BusinessName       string        `gorm:"column:business_name;not null"`
	CommissionRate     *float64      `gorm:"column:commission_rate"`
	Status             string        `gorm:"column:status;not null;default:'pending'"`
	ProfileID          *uuid.UUID    `gorm:"column:profile_id;type:uuid"`
	ApplicationID      *uuid.UUID    `gorm:"column:application_id;type:uuid"`
	OnboardingComplete bool          `gorm:"column:onboarding_complete;not null;default:false"`
	Metadata           types.JSONMap `gorm:"column:metadata;type:jsonb;serializer:json"`
	CreatedAt          time.Time     `gorm:"column:created_at;autoCreateTime"`
}

func (Vendor) TableName() string { return "vendors" }
