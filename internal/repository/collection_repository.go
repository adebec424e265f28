package repository

import (
	"context"
	"fmt"

	"gierkopolecacz/backend/internal/models"

	"gorm.io/gorm"
)

// Collection identifies one of the per-user game collections.
type Collection struct {
	name      string
	table     string
	joinTable string
	newOwner  func(userID uint) any
}

var (
	Selected = Collection{
		name:      "selected",
		table:     "selected_games",
		joinTable: "selected_game_items",
		newOwner:  func(userID uint) any { return &models.SelectedGames{UserID: userID} },
	}
	Owned = Collection{
		name:      "owned",
		table:     "owned_games",
		joinTable: "owned_game_items",
		newOwner:  func(userID uint) any { return &models.OwnedGames{UserID: userID} },
	}
)

func (c Collection) String() string { return c.name }

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (c Collection) itemsOf(db *gorm.DB, userID uint) *gorm.DB {
	return db.Table(c.joinTable+" AS items").
		Joins("JOIN "+c.table+" AS owner ON owner.id = items.collection_id").
		Where("owner.user_id = ?", userID)
}

// Games lists the games of a user's collection with their tags. A collection
// that was never created is empty.
func (r *CollectionRepository) Games(ctx context.Context, c Collection, userID uint) ([]models.Game, error) {
	ids, err := r.GameIDs(ctx, c, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Game{}, nil
	}

	var games []models.Game
	err = r.db.WithContext(ctx).Preload("Tags").Order("rank ASC").Find(&games, ids).Error
	if err != nil {
		return nil, fmt.Errorf("load %s games: %w", c, err)
	}
	return games, nil
}

// GameIDs returns the ids of the games in a user's collection.
func (r *CollectionRepository) GameIDs(ctx context.Context, c Collection, userID uint) ([]uint, error) {
	var ids []uint
	if err := c.itemsOf(r.db.WithContext(ctx), userID).Pluck("items.game_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list %s game ids: %w", c, err)
	}
	return ids, nil
}

// Count returns the number of games in a user's collection.
func (r *CollectionRepository) Count(ctx context.Context, c Collection, userID uint) (int64, error) {
	var n int64
	if err := c.itemsOf(r.db.WithContext(ctx), userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s games: %w", c, err)
	}
	return n, nil
}

// Add puts a game into a user's collection, creating the collection on first
// use. Adding a game twice keeps a single entry.
func (r *CollectionRepository) Add(ctx context.Context, c Collection, userID uint, game *models.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner := c.newOwner(userID)
		if err := tx.Where("user_id = ?", userID).FirstOrCreate(owner).Error; err != nil {
			return fmt.Errorf("get %s collection: %w", c, err)
		}
		if err := tx.Model(owner).Association("Games").Append(game); err != nil {
			return fmt.Errorf("add game %d to %s: %w", game.ID, c, err)
		}
		return nil
	})
}

// Remove takes a game out of a user's collection. Removing an absent game is a no-op.
func (r *CollectionRepository) Remove(ctx context.Context, c Collection, userID, gameID uint) error {
	if err := removeItems(r.db.WithContext(ctx), c, userID, &gameID); err != nil {
		return fmt.Errorf("remove game %d from %s: %w", gameID, c, err)
	}
	return nil
}

// Clear empties a user's collection.
func (r *CollectionRepository) Clear(ctx context.Context, c Collection, userID uint) error {
	if err := removeItems(r.db.WithContext(ctx), c, userID, nil); err != nil {
		return fmt.Errorf("clear %s: %w", c, err)
	}
	return nil
}

func removeItems(db *gorm.DB, c Collection, userID uint, gameID *uint) error {
	query := "DELETE FROM " + c.joinTable + " WHERE collection_id IN (SELECT id FROM " + c.table + " WHERE user_id = ?)"
	args := []any{userID}
	if gameID != nil {
		query += " AND game_id = ?"
		args = append(args, *gameID)
	}
	return db.Exec(query, args...).Error
}
