package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TagsResponse struct {
	Categories []string `json:"categories"`
	Mechanics  []string `json:"mechanics"`
}

// GetTags godoc
// @Summary      Get filter labels
// @Description  Lists the category and mechanic labels games can be filtered by.
// @Tags         games
// @Produce      json
// @Success      200 {object} TagsResponse
// @Router       /games/tags [get]
func (h *Handler) GetTags(c *gin.Context) {
	labels := h.Games.Tags()
	c.JSON(http.StatusOK, TagsResponse{Categories: labels.Categories, Mechanics: labels.Mechanics})
}
