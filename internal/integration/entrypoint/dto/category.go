package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Kind  string `json:"kind,omitempty" binding:"omitempty,oneof=expense income both"`
	Color string `json:"color,omitempty" binding:"omitempty,max=7"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Kind  *string `json:"kind,omitempty" binding:"omitempty,oneof=expense income both"`
	Color *string `json:"color,omitempty" binding:"omitempty,max=7"`
	Icon  *string `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// InitializeCategoriesResponse reports whether the default seed ran.
type InitializeCategoriesResponse struct {
	Seeded  bool   `json:"seeded"`
	Message string `json:"message"`
}

// CategoryResponseFromEntity converts a domain Category to a CategoryResponse.
func CategoryResponseFromEntity(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Kind:      string(category.Kind),
		Color:     category.Color,
		Icon:      category.Icon,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// CategoryListResponseFromEntities converts domain categories to a list response.
func CategoryListResponseFromEntities(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponseFromEntity(c)
	}
	return CategoryListResponse{Categories: responses}
}
