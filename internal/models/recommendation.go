package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recommendation is an immutable snapshot of a recommendation request: the
// games it was based on and the games it suggested.
type Recommendation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uint      `gorm:"not null;index"`
	CreatedAt        time.Time `gorm:"index"`
	OpinionCreated   bool      `gorm:"not null;default:false"`
	SelectedGames    []*Game   `gorm:"many2many:recommendation_selected_games;"`
	RecommendedGames []*Game   `gorm:"many2many:recommendation_recommended_games;"`

	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Opinion *Opinion `gorm:"foreignKey:RecommendationID"`
}

// BeforeCreate assigns a random id when none was set.
func (r *Recommendation) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
