package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gierkopolecacz/backend/internal/models"

	"gorm.io/gorm"
)

// Orderings maps the accepted catalog ordering values to SQL.
var Orderings = map[string]string{
	"rank":    "games.rank ASC",
	"-rank":   "games.rank DESC",
	"name":    "games.name ASC",
	"-name":   "games.name DESC",
	"rating":  "games.rating ASC",
	"-rating": "games.rating DESC",
}

const DefaultOrdering = "rank"

const tagFilter = "EXISTS (SELECT 1 FROM game_tags gt JOIN tags t ON t.id = gt.tag_id WHERE gt.game_id = games.id AND t.name = ?)"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// GameFilter narrows a catalog listing.
type GameFilter struct {
	Name       string
	Categories []string
	Mechanics  []string
	Ordering   string
	Page       int
	PageSize   int
}

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Top returns the n best ranked games.
func (r *GameRepository) Top(ctx context.Context, n int) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).Order("games.rank ASC").Limit(n).Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("top games: %w", err)
	}
	return games, nil
}

func (r *GameRepository) filtered(ctx context.Context, f GameFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Game{})
	if f.Name != "" {
		q = q.Where(`games.name ILIKE ? ESCAPE '\'`, containsPattern(f.Name))
	}
	for _, tag := range f.Categories {
		q = q.Where(tagFilter, tag)
	}
	for _, tag := range f.Mechanics {
		q = q.Where(tagFilter, tag)
	}
	return q
}

// List returns one page of games matching the filter together with the total
// number of matches. Every category and mechanic in the filter must be present.
func (r *GameRepository) List(ctx context.Context, f GameFilter) ([]models.Game, int64, error) {
	order, ok := Orderings[f.Ordering]
	if !ok {
		order = Orderings[DefaultOrdering]
	}
	if f.Page < 1 {
		f.Page = 1
	}

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count games: %w", err)
	}

	var games []models.Game
	err := r.filtered(ctx, f).
		Preload("Tags").
		Order(order).
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&games).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list games: %w", err)
	}
	return games, total, nil
}

// SearchNames returns up to limit game names containing query.
func (r *GameRepository) SearchNames(ctx context.Context, query string, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.Game{}).
		Where(`name ILIKE ? ESCAPE '\'`, containsPattern(query)).
		Order("rank ASC").
		Limit(limit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	return names, nil
}

// GetByID returns a game with its tags.
func (r *GameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Preload("Tags").First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game %d: %w", id, err)
	}
	return &game, nil
}

// FindMostSimilarGames returns up to limit games sharing at least one of tags,
// best match first. Ties are broken by rating. MatchingTags is filled in.
func (r *GameRepository) FindMostSimilarGames(ctx context.Context, tags []string, exclude []uint, limit int) ([]models.Game, error) {
	if len(tags) == 0 {
		return []models.Game{}, nil
	}

	q := r.db.WithContext(ctx).
		Select("games.*, COUNT(tags.id) AS matching_tags").
		Joins("JOIN game_tags ON game_tags.game_id = games.id").
		Joins("JOIN tags ON tags.id = game_tags.tag_id").
		Where("tags.name IN ?", tags)
	// NOT IN with an empty list matches nothing.
	if len(exclude) > 0 {
		q = q.Where("games.id NOT IN ?", exclude)
	}

	var games []models.Game
	err := q.Group("games.id").
		Order("matching_tags DESC").
		Order("games.rating DESC NULLS LAST").
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("find similar games: %w", err)
	}
	return games, nil
}

// UpsertByBGGID creates or updates a game keyed on its BoardGameGeek id and
// replaces its tags with tagNames, creating missing tags.
func (r *GameRepository) UpsertByBGGID(ctx context.Context, game *models.Game, tagNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Game
		err := tx.Where("bgg_id = ?", game.BGGID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Omit("Tags").Create(game).Error; err != nil {
				return fmt.Errorf("create game %s: %w", game.BGGID, err)
			}
		case err != nil:
			return fmt.Errorf("find game %s: %w", game.BGGID, err)
		default:
			game.ID = existing.ID
			game.CreatedAt = existing.CreatedAt
			if err := tx.Omit("Tags").Save(game).Error; err != nil {
				return fmt.Errorf("update game %s: %w", game.BGGID, err)
			}
		}

		tags, err := ensureTags(tx, tagNames)
		if err != nil {
			return err
		}
		if err := tx.Model(game).Association("Tags").Replace(tags); err != nil {
			return fmt.Errorf("replace tags of game %s: %w", game.BGGID, err)
		}
		game.Tags = tags
		return nil
	})
}

func ensureTags(tx *gorm.DB, names []string) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		tag := &models.Tag{}
		if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(tag).Error; err != nil {
			return nil, fmt.Errorf("ensure tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
