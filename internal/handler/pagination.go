package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationMeta describes one page of a listing. Pages are numbered from 1.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// PaginatedResponse wraps one page of games or recommendations.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse builds the page envelope. A nil page is sent as [].
func NewPaginatedResponse[T any](data []T, totalItems int64, page, pageSize int) PaginatedResponse[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	if data == nil {
		data = []T{}
	}
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}
}

// pageParam reads the page query parameter; missing or malformed values mean page 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
