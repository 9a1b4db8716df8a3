// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/saree-sanctuary/internal/services"
	"github.com/javajoker/saree-sanctuary/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	payload, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err, "order")
		return
	}

	utils.CreatedResponse(c, result)
}
