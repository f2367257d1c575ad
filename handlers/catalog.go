package handlers

import (
	"errors"
	"net/http"
	"strconv"

	productRepo "voyago/database/repository/product"
	"voyago/models"
	"voyago/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the product catalog endpoints.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// GetProduct handles GET /api/products/:kind/:productID.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	kind := models.ProductKind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown product kind"})
		return
	}

	p, err := h.Svc.GetProduct(c.Request.Context(), kind, c.Param("productID"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "product not found"})
			return
		}
		h.Logger.Error("catalog lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// QueryUnits handles GET /api/products/:kind/:productID/units. Supported
// query params: coachId, available (default true), partySize.
func (h *CatalogHandler) QueryUnits(c *gin.Context) {
	kind := models.ProductKind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown product kind"})
		return
	}

	filter := productRepo.UnitFilter{
		CoachID:       c.Query("coachId"),
		OnlyAvailable: c.DefaultQuery("available", "true") == "true",
	}

	units, err := h.Svc.QueryUnits(c.Request.Context(), kind, c.Param("productID"), filter)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "product not found"})
			return
		}
		h.Logger.Error("unit query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	if raw := c.Query("partySize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 && len(units) < size {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": units, "message": "fewer units available than party size"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": units})
}
