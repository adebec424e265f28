package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gierkopolecacz/backend/internal/ingest"
	"gierkopolecacz/backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrNoSelectedGames, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", service.ErrInvalidOrdering, "year"), http.StatusBadRequest},
		{fmt.Errorf("%w: rating", service.ErrInvalidOpinion), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrGameNotFound, http.StatusNotFound},
		{service.ErrRecommendationNotFound, http.StatusNotFound},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrUserExists, http.StatusConflict},
		{service.ErrOpinionExists, http.StatusConflict},
		{ingest.ErrImportRunning, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]int{1, 2}, 21, 3, 10)
	assert.Equal(t, PaginationMeta{CurrentPage: 3, PageSize: 10, TotalItems: 21, TotalPages: 3, HasPrevious: true}, resp.Meta)

	first := NewPaginatedResponse([]int{1}, 21, 1, 10)
	assert.True(t, first.Meta.HasNext)
	assert.False(t, first.Meta.HasPrevious)

	empty := NewPaginatedResponse[int](nil, 0, 1, 10)
	assert.NotNil(t, empty.Data)
	assert.Zero(t, empty.Meta.TotalPages)
	assert.False(t, empty.Meta.HasNext)
}
