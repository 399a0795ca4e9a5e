package httpresp

import "github.com/gin-gonic/gin"

type PageResponse[T any] struct {
	Items      []T   `json:"employees"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Page[T any](c *gin.Context, items []T, total int64, page, limit int) {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	c.JSON(200, PageResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	})
}
