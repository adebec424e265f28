package bgg

import (
	"context"
	"errors"

	"gierkopolecacz/backend/internal/logging"
)

// GameRecord is a ranking row merged with its translated metadata.
type GameRecord struct {
	RankingRow
	Thing
}

// FailedGame is a game whose metadata could not be prepared.
type FailedGame struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// ProgressFunc is called after each game, successful or not.
type ProgressFunc func(done, total int)

// Prepare downloads the ranking dump and fetches metadata for its first limit
// games (all when limit <= 0), one game at a time. Games whose metadata cannot
// be fetched or parsed are returned in failed instead of stopping the batch.
// Only a missing dump or a cancelled context fails the whole call.
func (c *Client) Prepare(ctx context.Context, limit int, progress ProgressFunc) ([]GameRecord, []FailedGame, error) {
	rows, err := c.FetchRankings(ctx)
	if err != nil {
		return nil, nil, err
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	records := make([]GameRecord, 0, len(rows))
	var failed []FailedGame
	for i, row := range rows {
		thing, err := c.GetThing(ctx, row.ID)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return records, failed, err
			}
			logging.Warn().Err(err).Str("game_id", row.ID).Msg("could not retrieve game information")
			failed = append(failed, FailedGame{ID: row.ID, Reason: err.Error()})
		} else {
			thing.Categories = TranslateCategories(thing.Categories)
			thing.Mechanics = TranslateMechanics(thing.Mechanics)
			records = append(records, GameRecord{RankingRow: row, Thing: *thing})
		}
		if progress != nil {
			progress(i+1, len(rows))
		}
	}
	return records, failed, nil
}
