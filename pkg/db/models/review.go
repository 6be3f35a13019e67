package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer product review.
type Review struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID *uuid.UUID `gorm:"column:product_id;type:uuid"`
	ProfileID *uuid.UUID `gorm:"column:profile_id;type:uuid"`
	Rating    int        `gorm:"column:rating;not null"`
	Title     *string    `gorm:"column:title"`
	Body      *string    `gorm:"column:body"`
	Status    string     `gorm:"column:status;not null;default:'pending'"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Review) TableName() string { return "reviews" }
