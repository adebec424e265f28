package models

import "gorm.io/gorm"

// SelectedGames holds the games a user picked as the base of their next recommendation.
type SelectedGames struct {
	gorm.Model
	UserID uint    `gorm:"not null;uniqueIndex"`
	Games  []*Game `gorm:"many2many:selected_game_items;joinForeignKey:CollectionID;joinReferences:GameID"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// OwnedGames holds the games a user already owns; they are never recommended.
type OwnedGames struct {
	gorm.Model
	UserID uint    `gorm:"not null;uniqueIndex"`
	Games  []*Game `gorm:"many2many:owned_game_items;joinForeignKey:CollectionID;joinReferences:GameID"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// GameIDs returns the ids of the loaded games.
func GameIDs(games []*Game) []uint {
	ids := make([]uint, 0, len(games))
	for _, g := range games {
		if g != nil {
			ids = append(ids, g.ID)
		}
	}
	return ids
}
