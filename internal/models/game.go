package models

import "gorm.io/gorm"

// Game represents a board game imported from BoardGameGeek.
type Game struct {
	gorm.Model
	BGGID         string  `gorm:"column:bgg_id;size:35;uniqueIndex"`
	Rank          int     `gorm:"index"`
	Rating        float64 `gorm:"index"`
	Thumbnail     string  `gorm:"size:512"`
	Name          string  `gorm:"size:255;not null;index"`
	YearPublished string  `gorm:"size:5"`
	MinPlayers    int
	MaxPlayers    int
	PlayingTime   int
	Artist        string `gorm:"size:350"`
	Designer      string `gorm:"size:350"`
	Tags          []*Tag `gorm:"many2many:game_tags;"`

	// MatchingTags is only filled by the similarity query.
	MatchingTags int `gorm:"->;-:migration"`
}

// TagNames returns the names of the game's loaded tags.
func (g *Game) TagNames() []string {
	names := make([]string, 0, len(g.Tags))
	for _, tag := range g.Tags {
		if tag != nil {
			names = append(names, tag.Name)
		}
	}
	return names
}
