// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/saree-sanctuary/internal/services"
	"github.com/javajoker/saree-sanctuary/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /api/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	limit, ok := limitParam(c, services.DefaultListLimit)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "category")
		return
	}

	utils.SuccessResponse(c, categories)
}
