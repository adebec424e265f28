package handler

import (
	"errors"
	"net/http"
	"time"

	"gierkopolecacz/backend/internal/auth"
	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- DTOs ---

type OpinionInput struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=10" example:"8"`
	Description string `json:"description" binding:"required,max=500" example:"Spot on"`
}

type OpinionResponse struct {
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func newOpinionResponse(op *models.Opinion) *OpinionResponse {
	if op == nil {
		return nil
	}
	return &OpinionResponse{Rating: op.Rating, Description: op.Description, CreatedAt: op.CreatedAt}
}

type RecommendationResponse struct {
	ID               uuid.UUID        `json:"id"`
	CreatedAt        time.Time        `json:"created_at"`
	OpinionCreated   bool             `json:"opinion_created"`
	SelectedGames    []GameResponse   `json:"selected_games"`
	RecommendedGames []GameResponse   `json:"recommended_games"`
	Opinion          *OpinionResponse `json:"opinion,omitempty"`
}

func newRecommendationResponse(rec *models.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:               rec.ID,
		CreatedAt:        rec.CreatedAt,
		OpinionCreated:   rec.OpinionCreated,
		SelectedGames:    gamePointersResponse(rec.SelectedGames),
		RecommendedGames: gamePointersResponse(rec.RecommendedGames),
		Opinion:          newOpinionResponse(rec.Opinion),
	}
}

// PaginatedRecommendationResponse defines the structure for a paginated list of recommendations.
type PaginatedRecommendationResponse struct {
	Data []RecommendationResponse `json:"data"`
	Meta PaginationMeta           `json:"meta"`
}

// endregion

func recommendationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recommendation id"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateRecommendation godoc
// @Summary      Create a recommendation
// @Description  Recommends up to 10 games sharing the most tags with the selected games, skipping selected and owned games. The selection is cleared afterwards.
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} RecommendationResponse
// @Failure      400 {object} ErrorResponse "No games selected"
// @Failure      401 {object} ErrorResponse
// @Router       /recommendations [post]
func (h *Handler) CreateRecommendation(c *gin.Context) {
	rec, err := h.Recommendations.Create(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRecommendationResponse(rec))
}

// GetRecommendations godoc
// @Summary      List recommendations
// @Description  Lists the user's recommendations, newest first, 20 per page.
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} PaginatedRecommendationResponse
// @Failure      401 {object} ErrorResponse
// @Router       /recommendations [get]
func (h *Handler) GetRecommendations(c *gin.Context) {
	result, err := h.Recommendations.List(c.Request.Context(), auth.UserID(c), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RecommendationResponse, 0, len(result.Recommendations))
	for i := range result.Recommendations {
		response = append(response, newRecommendationResponse(&result.Recommendations[i]))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(response, result.Total, result.Page, service.RecommendationPageSize))
}

// GetRecommendationByID godoc
// @Summary      Get a recommendation
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recommendation ID"
// @Success      200 {object} RecommendationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Recommendation not found"
// @Router       /recommendations/{id} [get]
func (h *Handler) GetRecommendationByID(c *gin.Context) {
	id, ok := recommendationID(c)
	if !ok {
		return
	}

	rec, err := h.Recommendations.Get(c.Request.Context(), auth.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRecommendationResponse(rec))
}

// CreateOpinion godoc
// @Summary      Rate a recommendation
// @Description  Stores the user's opinion on a recommendation. Each recommendation takes one opinion.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path string       true "Recommendation ID"
// @Param        input body OpinionInput true "Opinion"
// @Success      201 {object} OpinionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Recommendation not found"
// @Failure      409 {object} ErrorResponse "Opinion already exists"
// @Router       /recommendations/{id}/opinion [post]
func (h *Handler) CreateOpinion(c *gin.Context) {
	id, ok := recommendationID(c)
	if !ok {
		return
	}

	var input OpinionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	op, err := h.Recommendations.AddOpinion(c.Request.Context(), auth.UserID(c), id, input.Rating, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOpinionResponse(op))
}

// GetOpinion godoc
// @Summary      Get the opinion on a recommendation
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recommendation ID"
// @Success      200 {object} OpinionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Opinion not found"
// @Router       /recommendations/{id}/opinion [get]
func (h *Handler) GetOpinion(c *gin.Context) {
	id, ok := recommendationID(c)
	if !ok {
		return
	}

	op, err := h.Recommendations.GetOpinion(c.Request.Context(), auth.UserID(c), id)
	if errors.Is(err, service.ErrOpinionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opinion not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOpinionResponse(op))
}
