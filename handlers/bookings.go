package handlers

import (
	"errors"
	"net/http"

	"voyago/middleware"
	"voyago/services/bookings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves confirmed bookings.
type BookingHandler struct {
	Svc    bookings.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc bookings.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	list, err := h.Svc.List(c.Request.Context(), session.UserID)
	if err != nil {
		h.Logger.Error("booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// Get handles GET /api/bookings/:bookingID.
func (h *BookingHandler) Get(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	b, err := h.Svc.Get(c.Request.Context(), session.UserID, c.Param("bookingID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// Cancel handles DELETE /api/bookings/:bookingID.
func (h *BookingHandler) Cancel(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	b, err := h.Svc.Cancel(c.Request.Context(), session.UserID, c.Param("bookingID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bookings.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "booking not found"})
	case errors.Is(err, bookings.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "booking belongs to another user"})
	case errors.Is(err, bookings.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "booking already cancelled"})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}
