package handlers

import (
	"errors"
	"net/http"

	"voyago/middleware"
	"voyago/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler serves the caller's saved trips.
type TripHandler struct {
	Svc    trip.TripService
	Logger *zap.Logger
}

func NewTripHandler(svc trip.TripService, logger *zap.Logger) *TripHandler {
	return &TripHandler{Svc: svc, Logger: logger}
}

type createTripRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
}

// Create handles POST /api/trips.
func (h *TripHandler) Create(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), session.UserID, req.Name, req.StartDate)
	if err != nil {
		var validationErr *trip.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": validationErr.Message})
			return
		}
		h.Logger.Error("trip create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": t})
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	trips, err := h.Svc.List(c.Request.Context(), session.UserID)
	if err != nil {
		h.Logger.Error("trip list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": trips})
}
