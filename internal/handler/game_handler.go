package handler

import (
	"net/http"

	"gierkopolecacz/backend/internal/auth"
	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"
	"gierkopolecacz/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameResponse struct {
	ID            uint     `json:"id"`
	BGGID         string   `json:"bgg_id"`
	Rank          int      `json:"rank"`
	Rating        float64  `json:"rating"`
	Thumbnail     string   `json:"thumbnail"`
	Name          string   `json:"name"`
	YearPublished string   `json:"year_published"`
	MinPlayers    int      `json:"min_players"`
	MaxPlayers    int      `json:"max_players"`
	PlayingTime   int      `json:"playing_time"`
	Artist        string   `json:"artist"`
	Designer      string   `json:"designer"`
	Tags          []string `json:"tags"`
	IsSelected    bool     `json:"is_selected"`
	IsOwned       bool     `json:"is_owned"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:            game.ID,
		BGGID:         game.BGGID,
		Rank:          game.Rank,
		Rating:        game.Rating,
		Thumbnail:     game.Thumbnail,
		Name:          game.Name,
		YearPublished: game.YearPublished,
		MinPlayers:    game.MinPlayers,
		MaxPlayers:    game.MaxPlayers,
		PlayingTime:   game.PlayingTime,
		Artist:        game.Artist,
		Designer:      game.Designer,
		Tags:          game.TagNames(),
	}
}

func newGameViewResponse(view service.GameView) GameResponse {
	resp := newGameResponse(view.Game)
	resp.IsSelected = view.Selected
	resp.IsOwned = view.Owned
	return resp
}

func newGameResponses(games []models.Game) []GameResponse {
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, newGameResponse(g))
	}
	return out
}

func gamePointersResponse(games []*models.Game) []GameResponse {
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		if g != nil {
			out = append(out, newGameResponse(*g))
		}
	}
	return out
}

// GameListQuery holds the catalog filters.
type GameListQuery struct {
	Ordering   string   `form:"ordering" binding:"omitempty,oneof=rank -rank name -name rating -rating"`
	GameName   string   `form:"game_name"`
	Categories []string `form:"selected_categories"`
	Mechanics  []string `form:"selected_mechanics"`
	Page       int      `form:"page" binding:"omitempty,min=1"`
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// region --- Public Handlers ---

// GetTopGames godoc
// @Summary      Get the best ranked games
// @Description  Returns the 12 best ranked games of the catalog.
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Router       /games/top [get]
func (h *Handler) GetTopGames(c *gin.Context) {
	games, err := h.Games.Top(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponses(games))
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games (10 per page) filtered by name and tags. Every listed category and mechanic must be present on a game.
// @Tags         games
// @Produce      json
// @Param        ordering            query string   false "Ordering" Enums(rank, -rank, name, -name, rating, -rating) default(rank)
// @Param        game_name           query string   false "Part of the game name"
// @Param        selected_categories query []string false "Required categories" collectionFormat(multi)
// @Param        selected_mechanics  query []string false "Required mechanics" collectionFormat(multi)
// @Param        page                query int      false "Page number" default(1)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	var query GameListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.Games.List(c.Request.Context(), auth.UserID(c), repository.GameFilter{
		Name:       query.GameName,
		Categories: query.Categories,
		Mechanics:  query.Mechanics,
		Ordering:   query.Ordering,
		Page:       query.Page,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]GameResponse, 0, len(page.Games))
	for _, view := range page.Games {
		response = append(response, newGameViewResponse(view))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(response, page.Total, page.Page, service.GamesPageSize))
}

// SearchGames godoc
// @Summary      Autocomplete game names
// @Description  Returns up to 10 names of games containing the query.
// @Tags         games
// @Produce      json
// @Param        q query string false "Part of the game name"
// @Success      200 {array} string
// @Router       /games/search [get]
func (h *Handler) SearchGames(c *gin.Context) {
	names, err := h.Games.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves details for a single game, including its tags and the viewer's collection flags.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	view, err := h.Games.Get(c.Request.Context(), auth.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameViewResponse(*view))
}

// endregion
