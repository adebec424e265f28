package repository

import (
	"context"
	"errors"
	"fmt"

	"gierkopolecacz/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// Create stores a recommendation and empties the user's selected games in one
// transaction.
func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("SelectedGames.*", "RecommendedGames.*").Create(rec).Error; err != nil {
			return fmt.Errorf("create recommendation: %w", err)
		}
		if err := removeItems(tx, Selected, rec.UserID, nil); err != nil {
			return fmt.Errorf("clear selected games: %w", err)
		}
		return nil
	})
}

// List returns one page of a user's recommendations, newest first.
func (r *RecommendationRepository) List(ctx context.Context, userID uint, page, pageSize int) ([]models.Recommendation, int64, error) {
	if page < 1 {
		page = 1
	}
	base := r.db.WithContext(ctx).Model(&models.Recommendation{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count recommendations: %w", err)
	}

	var recs []models.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("SelectedGames").
		Preload("RecommendedGames").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&recs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, total, nil
}

// Get returns a user's recommendation with its games, their tags and the opinion.
func (r *RecommendationRepository) Get(ctx context.Context, userID uint, id uuid.UUID) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := r.db.WithContext(ctx).
		Preload("SelectedGames.Tags").
		Preload("RecommendedGames.Tags").
		Preload("Opinion").
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recommendation %s: %w", id, err)
	}
	return &rec, nil
}

// CreateOpinion stores an opinion and flags its recommendation in one
// transaction. ErrConflict means the recommendation already has one.
func (r *RecommendationRepository) CreateOpinion(ctx context.Context, op *models.Opinion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Recommendation{}).
			Where("id = ? AND user_id = ? AND opinion_created = ?", op.RecommendationID, op.UserID, false).
			Update("opinion_created", true)
		if res.Error != nil {
			return fmt.Errorf("flag recommendation %s: %w", op.RecommendationID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}
		if err := tx.Create(op).Error; err != nil {
			return fmt.Errorf("create opinion: %w", err)
		}
		return nil
	})
}

// Opinion returns the opinion left on a recommendation.
func (r *RecommendationRepository) Opinion(ctx context.Context, userID uint, recommendationID uuid.UUID) (*models.Opinion, error) {
	var op models.Opinion
	err := r.db.WithContext(ctx).
		Where("recommendation_id = ? AND user_id = ?", recommendationID, userID).
		First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get opinion for %s: %w", recommendationID, err)
	}
	return &op, nil
}
