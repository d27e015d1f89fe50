package category

import (
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
)

// CategoryOutput 分類輸出 DTO
type CategoryOutput struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

func toOutput(c *category.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:          c.CategoryID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
