package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/services"
)

// PeriodHandler handles accounting period records.
type PeriodHandler struct {
	periodService services.PeriodServicer
	auditService  services.AuditServicer
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodService services.PeriodServicer, auditService services.AuditServicer) *PeriodHandler {
	return &PeriodHandler{periodService: periodService, auditService: auditService}
}

// PeriodQuery selects a period by year and month.
type PeriodQuery struct {
	Year  int `form:"anio" binding:"required,min=1"`
	Month int `form:"mes" binding:"required,min=1,max=12"`
}

// UpsertPeriodRequest represents the request payload for storing a period.
// Missing dates default to the 26th-to-25th rule.
type UpsertPeriodRequest struct {
	Year        int     `json:"anio" binding:"required,min=1"`
	Month       int     `json:"mes" binding:"required,min=1,max=12"`
	StartDate   *string `json:"fecha_inicio"`
	EndDate     *string `json:"fecha_fin"`
	Provisional bool    `json:"es_provisional"`
	InvoiceDate *string `json:"fecha_factura"`
	Notes       string  `json:"notas" binding:"max=500"`
}

// Current returns the period containing today, creating it if needed.
// @Summary     Current period
// @Tags        periods
// @Produce     json
// @Success     200 {object} models.Period "Current period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periodos/actual [get]
func (h *PeriodHandler) Current(c *gin.Context) {
	record, err := h.periodService.Current(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"periodo": record})
}

// Get returns the stored period for anio/mes, or its provisional boundaries.
// @Summary     Get period
// @Tags        periods
// @Produce     json
// @Param       anio query int true "Year"
// @Param       mes query int true "Month"
// @Success     200 {object} models.Period "Period"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periodos [get]
func (h *PeriodHandler) Get(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.periodService.Get(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"periodo": record})
}

// List returns the most recent stored periods.
// @Summary     List periods
// @Tags        periods
// @Produce     json
// @Param       limit query int false "Maximum records (default 12)"
// @Success     200 {array} models.Period "Periods"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periodos/listado [get]
func (h *PeriodHandler) List(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	records, err := h.periodService.List(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if records == nil {
		records = []models.Period{}
	}
	c.JSON(http.StatusOK, gin.H{"periodos": records})
}

// Upsert creates or replaces a period record.
// @Summary     Store period
// @Tags        periods
// @Accept      json
// @Produce     json
// @Param       request body UpsertPeriodRequest true "Period"
// @Success     200 {object} models.Period "Period stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periodos [post]
func (h *PeriodHandler) Upsert(c *gin.Context) {
	var req UpsertPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	start, err := parseOptionalTime(req.StartDate, "fecha_inicio")
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseOptionalTime(req.EndDate, "fecha_fin")
	if err != nil {
		respondWithError(c, err)
		return
	}
	invoice, err := parseOptionalTime(req.InvoiceDate, "fecha_factura")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.periodService.Upsert(c.Request.Context(), services.PeriodInput{
		Year:        req.Year,
		Month:       req.Month,
		StartDate:   start,
		EndDate:     end,
		Provisional: req.Provisional,
		InvoiceDate: invoice,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "UPSERT_PERIOD", "period", record.ID, c.ClientIP(),
		map[string]interface{}{"anio": record.Year, "mes": record.Month})

	c.JSON(http.StatusOK, gin.H{"periodo": record})
}

// Generate creates provisional periods from the oldest expense through today.
// @Summary     Generate periods
// @Tags        periods
// @Produce     json
// @Success     200 {object} services.GenerateResult "Periods generated"
// @Failure     422 {object} ErrorResponse "No expenses recorded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periodos/generar [post]
func (h *PeriodHandler) Generate(c *gin.Context) {
	result, err := h.periodService.GenerateFromExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "GENERATE_PERIODS", "period", 0, c.ClientIP(),
		map[string]interface{}{"creados": result.Created})

	c.JSON(http.StatusOK, result)
}
