package handler

import (
	"context"
	"net/http"

	"gierkopolecacz/backend/internal/auth"
	"gierkopolecacz/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type collectionOps struct {
	list   func(ctx context.Context, userID uint) ([]models.Game, error)
	add    func(ctx context.Context, userID, gameID uint) error
	remove func(ctx context.Context, userID, gameID uint) error
}

func (h *Handler) selectedOps() collectionOps {
	return collectionOps{list: h.Collections.Selected, add: h.Collections.AddSelected, remove: h.Collections.RemoveSelected}
}

func (h *Handler) ownedOps() collectionOps {
	return collectionOps{list: h.Collections.Owned, add: h.Collections.AddOwned, remove: h.Collections.RemoveOwned}
}

func (ops collectionOps) listHandler(c *gin.Context) {
	games, err := ops.list(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponses(games))
}

func (ops collectionOps) addHandler(c *gin.Context) {
	gameID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ops.add(c.Request.Context(), auth.UserID(c), gameID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game added"})
}

func (ops collectionOps) removeHandler(c *gin.Context) {
	gameID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ops.remove(c.Request.Context(), auth.UserID(c), gameID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game removed"})
}

// GetSelectedGames godoc
// @Summary      List selected games
// @Description  Lists the games the user selected as the base of the next recommendation.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} GameResponse
// @Failure      401 {object} ErrorResponse
// @Router       /selected-games [get]
func (h *Handler) GetSelectedGames(c *gin.Context) { h.selectedOps().listHandler(c) }

// AddSelectedGame godoc
// @Summary      Select a game
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game added"}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /selected-games/{id} [post]
func (h *Handler) AddSelectedGame(c *gin.Context) { h.selectedOps().addHandler(c) }

// RemoveSelectedGame godoc
// @Summary      Unselect a game
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game removed"}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /selected-games/{id} [delete]
func (h *Handler) RemoveSelectedGame(c *gin.Context) { h.selectedOps().removeHandler(c) }

// GetOwnedGames godoc
// @Summary      List owned games
// @Description  Lists the games the user owns. Owned games are never recommended.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} GameResponse
// @Failure      401 {object} ErrorResponse
// @Router       /owned-games [get]
func (h *Handler) GetOwnedGames(c *gin.Context) { h.ownedOps().listHandler(c) }

// AddOwnedGame godoc
// @Summary      Mark a game as owned
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game added"}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /owned-games/{id} [post]
func (h *Handler) AddOwnedGame(c *gin.Context) { h.ownedOps().addHandler(c) }

// RemoveOwnedGame godoc
// @Summary      Unmark an owned game
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game removed"}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /owned-games/{id} [delete]
func (h *Handler) RemoveOwnedGame(c *gin.Context) { h.ownedOps().removeHandler(c) }
