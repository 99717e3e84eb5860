package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/services"
)

// SettingsHandler handles the projection baseline settings.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateBaselineRequest represents the request payload for the projection
// baseline. An empty fecha_base clears it.
type UpdateBaselineRequest struct {
	OpeningBalance *int64  `json:"saldo_inicial"`
	BaseMonth      *string `json:"fecha_base" binding:"omitempty,year_month"`
}

// GetBaseline returns the projection baseline.
// @Summary     Get projection baseline
// @Tags        settings
// @Produce     json
// @Success     200 {object} services.ProjectionBaseline "Baseline"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /config/proyeccion [get]
func (h *SettingsHandler) GetBaseline(c *gin.Context) {
	baseline, err := h.settingsService.GetProjectionBaseline(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, baseline)
}

// UpdateBaseline changes the opening balance and/or base month.
// @Summary     Update projection baseline
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body UpdateBaselineRequest true "Baseline fields to change"
// @Success     200 {object} services.ProjectionBaseline "Baseline updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /config/proyeccion [put]
func (h *SettingsHandler) UpdateBaseline(c *gin.Context) {
	var req UpdateBaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.OpeningBalance == nil && req.BaseMonth == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "saldo_inicial or fecha_base is required"))
		return
	}

	baseline, err := h.settingsService.UpdateProjectionBaseline(c.Request.Context(), req.OpeningBalance, req.BaseMonth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.OpeningBalance != nil {
		changes["saldo_inicial"] = *req.OpeningBalance
	}
	if req.BaseMonth != nil {
		changes["fecha_base"] = *req.BaseMonth
	}
	h.auditService.Log(c.Request.Context(), "UPDATE_PROJECTION_BASELINE", "setting", 0, c.ClientIP(), changes)

	c.JSON(http.StatusOK, baseline)
}
