package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"gierkopolecacz/backend/internal/hub"
	"gierkopolecacz/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

const eventBuffer = 16

// StartImport godoc
// @Summary      Start a catalog import
// @Description  Imports the ranked games from BoardGameGeek in the background. Progress is published on the import event stream.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of top ranked games to import, 0 for all"
// @Success      202 {object} map[string]interface{} "{"message": "Import started", "limit": 100}"
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      409 {object} ErrorResponse "Import already running"
// @Router       /admin/import [post]
func (h *Handler) StartImport(c *gin.Context) {
	limit := h.ImportLimit
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative number"})
			return
		}
		limit = n
	}

	// The import outlives the request.
	ctx := h.ImportContext
	if ctx == nil {
		ctx = context.Background()
	}
	if err := h.Importer.Start(ctx, limit); err != nil {
		respondError(c, err)
		return
	}
	logging.Info().Int("limit", limit).Msg("import requested")
	c.JSON(http.StatusAccepted, gin.H{"message": "Import started", "limit": limit})
}

// GetImportStatus godoc
// @Summary      Get import status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]bool "{"running": false}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/import [get]
func (h *Handler) GetImportStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"running": h.Importer.Running()})
}

// StreamImportEvents godoc
// @Summary      Stream import progress
// @Description  Server-sent events with import.started, import.progress, import.finished and import.failed events.
// @Tags         admin
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200 {string} string "event stream"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/import/events [get]
func (h *Handler) StreamImportEvents(c *gin.Context) {
	client := make(hub.Client, eventBuffer)
	h.Hub.Subscribe(hub.ImportTopic, client)
	defer h.Hub.Unsubscribe(hub.ImportTopic, client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("import", string(message))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
