package service

import (
	"context"
	"errors"

	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"
)

// CollectionService manages the selected and owned games of users.
type CollectionService struct {
	games       GameStore
	collections CollectionStore
}

func NewCollectionService(games GameStore, collections CollectionStore) *CollectionService {
	return &CollectionService{games: games, collections: collections}
}

func (s *CollectionService) Selected(ctx context.Context, userID uint) ([]models.Game, error) {
	return s.collections.Games(ctx, repository.Selected, userID)
}

func (s *CollectionService) Owned(ctx context.Context, userID uint) ([]models.Game, error) {
	return s.collections.Games(ctx, repository.Owned, userID)
}

func (s *CollectionService) SelectedCount(ctx context.Context, userID uint) (int64, error) {
	return s.collections.Count(ctx, repository.Selected, userID)
}

func (s *CollectionService) AddSelected(ctx context.Context, userID, gameID uint) error {
	return s.add(ctx, repository.Selected, userID, gameID)
}

func (s *CollectionService) RemoveSelected(ctx context.Context, userID, gameID uint) error {
	return s.remove(ctx, repository.Selected, userID, gameID)
}

func (s *CollectionService) AddOwned(ctx context.Context, userID, gameID uint) error {
	return s.add(ctx, repository.Owned, userID, gameID)
}

func (s *CollectionService) RemoveOwned(ctx context.Context, userID, gameID uint) error {
	return s.remove(ctx, repository.Owned, userID, gameID)
}

func (s *CollectionService) add(ctx context.Context, c repository.Collection, userID, gameID uint) error {
	game, err := s.game(ctx, gameID)
	if err != nil {
		return err
	}
	return s.collections.Add(ctx, c, userID, game)
}

func (s *CollectionService) remove(ctx context.Context, c repository.Collection, userID, gameID uint) error {
	if _, err := s.game(ctx, gameID); err != nil {
		return err
	}
	return s.collections.Remove(ctx, c, userID, gameID)
}

func (s *CollectionService) game(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.games.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	return game, err
}
