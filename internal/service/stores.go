package service

import (
	"context"

	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"

	"github.com/google/uuid"
)

type GameStore interface {
	Top(ctx context.Context, n int) ([]models.Game, error)
	List(ctx context.Context, f repository.GameFilter) ([]models.Game, int64, error)
	SearchNames(ctx context.Context, query string, limit int) ([]string, error)
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	FindMostSimilarGames(ctx context.Context, tags []string, exclude []uint, limit int) ([]models.Game, error)
}

type CollectionStore interface {
	Games(ctx context.Context, c repository.Collection, userID uint) ([]models.Game, error)
	GameIDs(ctx context.Context, c repository.Collection, userID uint) ([]uint, error)
	Count(ctx context.Context, c repository.Collection, userID uint) (int64, error)
	Add(ctx context.Context, c repository.Collection, userID uint, game *models.Game) error
	Remove(ctx context.Context, c repository.Collection, userID, gameID uint) error
}

type RecommendationStore interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	List(ctx context.Context, userID uint, page, pageSize int) ([]models.Recommendation, int64, error)
	Get(ctx context.Context, userID uint, id uuid.UUID) (*models.Recommendation, error)
	CreateOpinion(ctx context.Context, op *models.Opinion) error
	Opinion(ctx context.Context, userID uint, recommendationID uuid.UUID) (*models.Opinion, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
