// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/saree-sanctuary/internal/services"
	"github.com/javajoker/saree-sanctuary/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GET /api/reviews/:product_slug
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	limit, ok := limitParam(c, services.DefaultListLimit)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), c.Param("product_slug"), limit)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.SetLimitHeaders(c, limit, len(reviews))
	utils.SuccessResponse(c, reviews)
}

// POST /api/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	payload, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.reviewService.CreateReview(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err, "review")
		return
	}

	utils.CreatedResponse(c, result)
}
