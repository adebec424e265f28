package service

import (
	"context"
	"errors"
	"fmt"

	"gierkopolecacz/backend/internal/bgg"
	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"
)

const (
	TopGamesCount    = 12
	GamesPageSize    = 10
	SearchResultSize = 10
)

// GameView is a game as seen by one viewer.
type GameView struct {
	models.Game
	Selected bool
	Owned    bool
}

type GamePage struct {
	Games []GameView
	Total int64
	Page  int
}

type TagLabels struct {
	Categories []string
	Mechanics  []string
}

type GameService struct {
	games       GameStore
	collections CollectionStore
}

func NewGameService(games GameStore, collections CollectionStore) *GameService {
	return &GameService{games: games, collections: collections}
}

// Top returns the best ranked games.
func (s *GameService) Top(ctx context.Context) ([]models.Game, error) {
	return s.games.Top(ctx, TopGamesCount)
}

// List returns one catalog page. viewerID 0 means an anonymous viewer.
func (s *GameService) List(ctx context.Context, viewerID uint, f repository.GameFilter) (*GamePage, error) {
	if f.Ordering == "" {
		f.Ordering = repository.DefaultOrdering
	}
	if _, ok := repository.Orderings[f.Ordering]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrdering, f.Ordering)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	f.PageSize = GamesPageSize

	games, total, err := s.games.List(ctx, f)
	if err != nil {
		return nil, err
	}
	selected, owned, err := s.membership(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]GameView, 0, len(games))
	for _, g := range games {
		views = append(views, GameView{Game: g, Selected: selected[g.ID], Owned: owned[g.ID]})
	}
	return &GamePage{Games: views, Total: total, Page: f.Page}, nil
}

// Search returns names of games containing query, for autocompletion.
func (s *GameService) Search(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	names, err := s.games.SearchNames(ctx, query, SearchResultSize)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *GameService) Get(ctx context.Context, viewerID, id uint) (*GameView, error) {
	game, err := s.games.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	selected, owned, err := s.membership(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return &GameView{Game: *game, Selected: selected[id], Owned: owned[id]}, nil
}

// Tags returns the labels games can be filtered by.
func (s *GameService) Tags() TagLabels {
	return TagLabels{Categories: bgg.CategoryLabels(), Mechanics: bgg.MechanicLabels()}
}

func (s *GameService) membership(ctx context.Context, viewerID uint) (map[uint]bool, map[uint]bool, error) {
	if viewerID == 0 {
		return map[uint]bool{}, map[uint]bool{}, nil
	}
	selected, err := s.idSet(ctx, repository.Selected, viewerID)
	if err != nil {
		return nil, nil, err
	}
	owned, err := s.idSet(ctx, repository.Owned, viewerID)
	if err != nil {
		return nil, nil, err
	}
	return selected, owned, nil
}

func (s *GameService) idSet(ctx context.Context, c repository.Collection, userID uint) (map[uint]bool, error) {
	ids, err := s.collections.GameIDs(ctx, c, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
