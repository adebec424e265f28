package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"gierkopolecacz/backend/internal/bgg"
	"gierkopolecacz/backend/internal/models"
)

// ToGame converts a prepared record into a game and the names of its tags.
// Year is kept as text. Empty player counts and playing time become 0.
func ToGame(rec bgg.GameRecord) (*models.Game, []string, error) {
	rank, err := strconv.Atoi(strings.TrimSpace(rec.Rank))
	if err != nil {
		return nil, nil, fmt.Errorf("rank %q: %w", rec.Rank, err)
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(rec.Average), 64)
	if err != nil {
		return nil, nil, fmt.Errorf("rating %q: %w", rec.Average, err)
	}
	minPlayers, err := optionalInt("min players", rec.MinPlayers)
	if err != nil {
		return nil, nil, err
	}
	maxPlayers, err := optionalInt("max players", rec.MaxPlayers)
	if err != nil {
		return nil, nil, err
	}
	playingTime, err := optionalInt("playing time", rec.PlayingTime)
	if err != nil {
		return nil, nil, err
	}

	game := &models.Game{
		BGGID:         rec.ID,
		Rank:          rank,
		Rating:        rating,
		Thumbnail:     rec.Thumbnail,
		Name:          rec.Name,
		YearPublished: rec.YearPublished,
		MinPlayers:    minPlayers,
		MaxPlayers:    maxPlayers,
		PlayingTime:   playingTime,
		Artist:        rec.Artist,
		Designer:      rec.Designer,
	}

	tags := make([]string, 0, len(rec.Categories)+len(rec.Mechanics))
	tags = append(tags, rec.Categories...)
	tags = append(tags, rec.Mechanics...)
	return game, tags, nil
}

func optionalInt(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, value, err)
	}
	return n, nil
}
