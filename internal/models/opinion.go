package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinOpinionRating         = 1
	MaxOpinionRating         = 10
	MaxOpinionDescriptionLen = 500
)

// Opinion is a user's feedback on a recommendation. At most one per recommendation.
type Opinion struct {
	gorm.Model
	UserID           uint      `gorm:"not null;index"`
	RecommendationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Rating           int       `gorm:"not null;check:rating >= 1 AND rating <= 10"`
	Description      string    `gorm:"size:500;not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
