// internal/handlers/system.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/saree-sanctuary/internal/services"
	"github.com/javajoker/saree-sanctuary/internal/utils"
)

type SystemHandler struct {
	systemService *services.SystemService
}

func NewSystemHandler(systemService *services.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	utils.SuccessResponse(c, h.systemService.Root())
}

// GET /schema
func (h *SystemHandler) Schema(c *gin.Context) {
	utils.SuccessResponse(c, h.systemService.Schema())
}

// GET /test
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	utils.SuccessResponse(c, h.systemService.Diagnostics(c.Request.Context()))
}

// POST /api/seed
func (h *SystemHandler) Seed(c *gin.Context) {
	counts, err := h.systemService.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err, "seed")
		return
	}

	utils.SuccessResponse(c, gin.H{"seeded": counts})
}
