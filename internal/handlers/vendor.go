// internal/handlers/vendor.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/saree-sanctuary/internal/services"
	"github.com/javajoker/saree-sanctuary/internal/utils"
)

type VendorHandler struct {
	vendorService *services.VendorService
}

func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// GET /api/vendors
func (h *VendorHandler) GetVendors(c *gin.Context) {
	limit, ok := limitParam(c, services.DefaultListLimit)
	if !ok {
		return
	}

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "vendor")
		return
	}

	utils.SetLimitHeaders(c, limit, len(vendors))
	utils.SuccessResponse(c, vendors)
}

// GET /api/vendors/:slug
func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendor(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "vendor")
		return
	}

	utils.SuccessResponse(c, vendor)
}

// POST /api/vendors
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	payload, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.vendorService.CreateVendor(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err, "vendor")
		return
	}

	utils.CreatedResponse(c, result)
}
