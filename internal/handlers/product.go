// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/services"
	"github.com/javajoker/saree-sanctuary/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	limit, ok := limitParam(c, services.DefaultProductLimit)
	if !ok {
		return
	}

	query := filter.ProductQuery{
		Q:         c.Query("q"),
		SareeType: c.Query("saree_type"),
		Color:     c.Query("color"),
		Material:  c.Query("material"),
		Occasion:  c.Query("occasion"),
	}

	products, err := h.productService.SearchProducts(c.Request.Context(), query, limit)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SetLimitHeaders(c, limit, len(products))
	utils.SuccessResponse(c, products)
}

// GET /api/products/:slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	payload, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.productService.CreateProduct(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.CreatedResponse(c, result)
}
