package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"gierkopolecacz/backend/internal/hub"
	"gierkopolecacz/backend/internal/ingest"
	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/service"
	"gierkopolecacz/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// ImportRunner starts catalog imports in the background.
type ImportRunner interface {
	Start(ctx context.Context, limit int) error
	Running() bool
}

// Handler serves the HTTP API.
type Handler struct {
	Users           *service.UserService
	Games           *service.GameService
	Collections     *service.CollectionService
	Recommendations *service.RecommendationService
	Importer        ImportRunner
	Hub             *hub.Hub

	// ImportLimit is used when an import request does not name a limit.
	ImportLimit int

	// ImportContext bounds background imports; the server cancels it on shutdown.
	// Nil means imports are never cancelled.
	ImportContext context.Context
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidOrdering),
		errors.Is(err, service.ErrInvalidOpinion),
		errors.Is(err, service.ErrNoSelectedGames):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrRecommendationNotFound),
		errors.Is(err, service.ErrOpinionNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrOpinionExists),
		errors.Is(err, ingest.ErrImportRunning):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its status. Unexpected errors are logged and
// hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("request failed")
		message = "Internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
