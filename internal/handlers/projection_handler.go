package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/services"
)

// maxProjectionMonths caps the meses query parameter.
const maxProjectionMonths = 600

// ProjectionHandler serves the projection and its override layer.
type ProjectionHandler struct {
	projectionService services.ProjectionServicer
	overrideService   services.OverrideServicer
	auditService      services.AuditServicer
	defaultMonths     int
}

// NewProjectionHandler creates a new ProjectionHandler. defaultMonths is used
// when the request does not name a horizon.
func NewProjectionHandler(
	projectionService services.ProjectionServicer,
	overrideService services.OverrideServicer,
	auditService services.AuditServicer,
	defaultMonths int,
) *ProjectionHandler {
	if defaultMonths < 1 {
		defaultMonths = 12
	}
	return &ProjectionHandler{
		projectionService: projectionService,
		overrideService:   overrideService,
		auditService:      auditService,
		defaultMonths:     defaultMonths,
	}
}

// UpsertOverrideRequest represents the request payload for storing an override.
type UpsertOverrideRequest struct {
	Kind        models.OverrideKind `json:"tipo" binding:"required,override_kind"`
	ReferenceID *uint               `json:"referencia_id"`
	Year        int                 `json:"anio" binding:"required,min=1"`
	Month       int                 `json:"mes" binding:"required,min=1,max=12"`
	Amount      *int64              `json:"monto_override" binding:"required"`
	Description string              `json:"descripcion" binding:"max=500"`
}

// DeleteOverrideQuery holds the key of the override to remove.
type DeleteOverrideQuery struct {
	Kind        models.OverrideKind `form:"tipo" binding:"required,override_kind"`
	ReferenceID uint                `form:"referencia_id"`
	Year        int                 `form:"anio" binding:"required,min=1"`
	Month       int                 `form:"mes" binding:"required,min=1,max=12"`
}

// Project returns the rolling forecast.
// @Summary     Project balances
// @Description Compute the two-table cash-flow projection for the next meses months
// @Tags        projection
// @Produce     json
// @Param       meses query int false "Months to project (default 12)"
// @Success     200 {object} services.ProjectionResult "Projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Configuration or server error"
// @Router      /estadisticas/proyectar [get]
func (h *ProjectionHandler) Project(c *gin.Context) {
	months := h.defaultMonths
	if v := c.Query("meses"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "meses must be an integer"))
			return
		}
		months = min(n, maxProjectionMonths)
	}

	result, err := h.projectionService.Project(c.Request.Context(), months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpsertOverride stores a manual value for one projection cell.
// @Summary     Store an override
// @Description Create or replace the override for (tipo, referencia_id, anio, mes)
// @Tags        projection
// @Accept      json
// @Produce     json
// @Param       request body UpsertOverrideRequest true "Override"
// @Success     200 {object} models.Override "Override stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estadisticas/override [post]
func (h *ProjectionHandler) UpsertOverride(c *gin.Context) {
	var req UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	key := services.OverrideKey{Kind: req.Kind, Year: req.Year, Month: req.Month}
	if req.ReferenceID != nil {
		key.ReferenceID = *req.ReferenceID
	}

	override, err := h.overrideService.UpsertOverride(c.Request.Context(), key, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "UPSERT_OVERRIDE", "projection_override", override.ID, c.ClientIP(),
		map[string]interface{}{
			"tipo":           override.Kind,
			"referencia_id":  override.ReferenceID,
			"anio":           override.Year,
			"mes":            override.Month,
			"monto_override": override.Amount,
		})

	c.JSON(http.StatusOK, gin.H{"override": override})
}

// DeleteOverride removes the override for one projection cell.
// @Summary     Delete an override
// @Description Remove an override so the cell falls back to its computed value
// @Tags        projection
// @Produce     json
// @Param       tipo query string true "Override kind"
// @Param       referencia_id query int false "Referenced fixed expense or category"
// @Param       anio query int true "Year"
// @Param       mes query int true "Month"
// @Success     200 {object} MessageResponse "Override deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Override not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estadisticas/override [delete]
func (h *ProjectionHandler) DeleteOverride(c *gin.Context) {
	var q DeleteOverrideQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	key := services.OverrideKey{Kind: q.Kind, ReferenceID: q.ReferenceID, Year: q.Year, Month: q.Month}
	if err := h.overrideService.DeleteOverride(c.Request.Context(), key); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "DELETE_OVERRIDE", "projection_override", q.ReferenceID, c.ClientIP(),
		map[string]interface{}{"tipo": q.Kind, "anio": q.Year, "mes": q.Month})

	c.JSON(http.StatusOK, MessageResponse{Message: "Override deleted successfully"})
}

// ListOverrides returns every stored override.
// @Summary     List overrides
// @Tags        projection
// @Produce     json
// @Success     200 {array} models.Override "Overrides"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estadisticas/overrides [get]
func (h *ProjectionHandler) ListOverrides(c *gin.Context) {
	overrides, err := h.overrideService.ListOverrides(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	if overrides == nil {
		overrides = []models.Override{}
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}
