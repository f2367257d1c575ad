package handlers

import (
	"errors"
	"net/http"

	"voyago/middleware"
	"voyago/models"
	"voyago/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard over HTTP. Every session
// endpoint resolves the caller's identity up front and hands it to the
// service, which enforces ownership before touching the session.
type WizardHandler struct {
	Svc    wizard.WizardService
	Logger *zap.Logger
}

// NewWizardHandler creates a WizardHandler.
func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// StartSession handles POST /api/wizard/:kind/:productID/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	kind := models.ProductKind(c.Param("kind"))
	productID := c.Param("productID")

	ws, err := h.Svc.StartSession(c.Request.Context(), session, kind, productID)
	if err != nil {
		h.respondError(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": ws})
}

// GetSession handles GET /api/wizard/session/:sessionID.
func (h *WizardHandler) GetSession(c *gin.Context) {
	caller, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	ws, err := h.Svc.GetSession(c.Request.Context(), caller.UserID, c.Param("sessionID"))
	if err != nil {
		h.respondError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ws})
}

// Advance handles POST /api/wizard/session/:sessionID/advance.
func (h *WizardHandler) Advance(c *gin.Context) {
	caller, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	var input wizard.StepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}

	ws, err := h.Svc.Advance(c.Request.Context(), caller.UserID, c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, ws, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ws})
}

// Retreat handles POST /api/wizard/session/:sessionID/retreat.
func (h *WizardHandler) Retreat(c *gin.Context) {
	caller, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	ws, err := h.Svc.Retreat(c.Request.Context(), caller.UserID, c.Param("sessionID"))
	if err != nil {
		h.respondError(c, ws, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ws})
}

// Submit handles POST /api/wizard/session/:sessionID/submit.
func (h *WizardHandler) Submit(c *gin.Context) {
	caller, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	var input wizard.StepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}

	ws, err := h.Svc.Submit(c.Request.Context(), caller.UserID, c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, ws, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ws})
}

// Cancel handles DELETE /api/wizard/session/:sessionID.
func (h *WizardHandler) Cancel(c *gin.Context) {
	caller, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	if err := h.Svc.Cancel(c.Request.Context(), caller.UserID, c.Param("sessionID")); err != nil {
		h.respondError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondError maps the wizard error taxonomy onto HTTP statuses. The
// session state (when present) rides along so clients can render the
// inline violation.
func (h *WizardHandler) respondError(c *gin.Context, ws *models.WizardSession, err error) {
	var validationErr *wizard.ValidationError
	var availabilityErr *wizard.AvailabilityError
	var submissionErr *wizard.SubmissionError

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, wizard.ErrSessionForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, wizard.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": validationErr.Message, "data": ws})
	case errors.As(err, &availabilityErr):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": availabilityErr.Message, "data": ws})
	case errors.As(err, &submissionErr):
		h.Logger.Error("booking submission failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": submissionErr.Error(), "data": ws})
	default:
		h.Logger.Error("wizard request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}
