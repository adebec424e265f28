package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/metrics"
	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"

	"github.com/google/uuid"
)

const (
	RecommendationSize     = 10
	RecommendationPageSize = 20
)

type RecommendationService struct {
	games           GameStore
	collections     CollectionStore
	recommendations RecommendationStore
}

func NewRecommendationService(games GameStore, collections CollectionStore, recommendations RecommendationStore) *RecommendationService {
	return &RecommendationService{games: games, collections: collections, recommendations: recommendations}
}

// Create recommends games sharing tags with the user's selected games and
// stores the result. Selected and owned games are never recommended. The
// selected collection is emptied afterwards.
func (s *RecommendationService) Create(ctx context.Context, userID uint) (*models.Recommendation, error) {
	selected, err := s.collections.Games(ctx, repository.Selected, userID)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrNoSelectedGames
	}
	owned, err := s.collections.GameIDs(ctx, repository.Owned, userID)
	if err != nil {
		return nil, err
	}

	selectedPtrs := make([]*models.Game, len(selected))
	for i := range selected {
		selectedPtrs[i] = &selected[i]
	}
	exclude := append(models.GameIDs(selectedPtrs), owned...)
	tags := unionTags(selected)

	similar, err := s.games.FindMostSimilarGames(ctx, tags, exclude, RecommendationSize)
	if err != nil {
		return nil, err
	}
	recommended := make([]*models.Game, len(similar))
	for i := range similar {
		recommended[i] = &similar[i]
	}

	rec := &models.Recommendation{
		UserID:           userID,
		SelectedGames:    selectedPtrs,
		RecommendedGames: recommended,
	}
	if err := s.recommendations.Create(ctx, rec); err != nil {
		return nil, err
	}

	metrics.RecommendationsCreated.Inc()
	metrics.RecommendedGames.Observe(float64(len(recommended)))
	logging.Info().
		Uint("user_id", userID).
		Str("recommendation_id", rec.ID.String()).
		Int("selected", len(selected)).
		Int("tags", len(tags)).
		Int("recommended", len(recommended)).
		Msg("recommendation created")
	return rec, nil
}

// unionTags returns the distinct tag names of games in first-seen order.
func unionTags(games []models.Game) []string {
	seen := make(map[string]bool)
	var tags []string
	for i := range games {
		for _, name := range games[i].TagNames() {
			if !seen[name] {
				seen[name] = true
				tags = append(tags, name)
			}
		}
	}
	return tags
}

type RecommendationPage struct {
	Recommendations []models.Recommendation
	Total           int64
	Page            int
}

func (s *RecommendationService) List(ctx context.Context, userID uint, page int) (*RecommendationPage, error) {
	if page < 1 {
		page = 1
	}
	recs, total, err := s.recommendations.List(ctx, userID, page, RecommendationPageSize)
	if err != nil {
		return nil, err
	}
	return &RecommendationPage{Recommendations: recs, Total: total, Page: page}, nil
}

// Get returns one of the user's recommendations. Recommendations of other
// users are reported as not found.
func (s *RecommendationService) Get(ctx context.Context, userID uint, id uuid.UUID) (*models.Recommendation, error) {
	rec, err := s.recommendations.Get(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRecommendationNotFound
	}
	return rec, err
}

// AddOpinion stores the user's opinion on a recommendation. Each
// recommendation takes one opinion.
func (s *RecommendationService) AddOpinion(ctx context.Context, userID uint, recommendationID uuid.UUID, rating int, description string) (*models.Opinion, error) {
	description = strings.TrimSpace(description)
	if err := validateOpinion(rating, description); err != nil {
		return nil, err
	}

	rec, err := s.Get(ctx, userID, recommendationID)
	if err != nil {
		return nil, err
	}
	if rec.OpinionCreated {
		return nil, ErrOpinionExists
	}

	op := &models.Opinion{
		UserID:           userID,
		RecommendationID: recommendationID,
		Rating:           rating,
		Description:      description,
	}
	if err := s.recommendations.CreateOpinion(ctx, op); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrOpinionExists
		}
		return nil, err
	}
	logging.Info().Uint("user_id", userID).Str("recommendation_id", recommendationID.String()).Int("rating", rating).Msg("opinion created")
	return op, nil
}

func validateOpinion(rating int, description string) error {
	if rating < models.MinOpinionRating || rating > models.MaxOpinionRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidOpinion, models.MinOpinionRating, models.MaxOpinionRating)
	}
	n := utf8.RuneCountInString(description)
	if n == 0 || n > models.MaxOpinionDescriptionLen {
		return fmt.Errorf("%w: description must have 1 to %d characters", ErrInvalidOpinion, models.MaxOpinionDescriptionLen)
	}
	return nil
}

func (s *RecommendationService) GetOpinion(ctx context.Context, userID uint, recommendationID uuid.UUID) (*models.Opinion, error) {
	op, err := s.recommendations.Opinion(ctx, userID, recommendationID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOpinionNotFound
	}
	return op, err
}
