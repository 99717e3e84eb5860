package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/services"
)

// FundHandler handles income records.
type FundHandler struct {
	fundService  services.FundServicer
	auditService services.AuditServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer, auditService services.AuditServicer) *FundHandler {
	return &FundHandler{fundService: fundService, auditService: auditService}
}

// CreateFundRequest represents the request payload for recording income.
type CreateFundRequest struct {
	Amount       int64           `json:"monto" binding:"required,gt=0"`
	MonthCovered string          `json:"mes_que_cubre" binding:"required"`
	PaymentDate  string          `json:"fecha_pago" binding:"required"`
	Type         models.FundType `json:"tipo" binding:"required,fund_type"`
	Description  string          `json:"descripcion" binding:"max=500"`
}

// CreateFund records an income entry.
// @Summary     Record income
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       request body CreateFundRequest true "Income details"
// @Success     201 {object} models.Fund "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fondos [post]
func (h *FundHandler) CreateFund(c *gin.Context) {
	var req CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	monthCovered, err := parseFlexibleTime(req.MonthCovered)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid mes_que_cubre format, use RFC3339 or YYYY-MM-DD"))
		return
	}
	paymentDate, err := parseFlexibleTime(req.PaymentDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid fecha_pago format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	fund, err := h.fundService.CreateFund(c.Request.Context(), services.FundInput{
		Amount:       req.Amount,
		MonthCovered: monthCovered,
		PaymentDate:  paymentDate,
		Type:         req.Type,
		Description:  req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "CREATE_FUND", "fund", fund.ID, c.ClientIP(),
		map[string]interface{}{"monto": req.Amount, "tipo": req.Type})

	c.JSON(http.StatusCreated, gin.H{"fondo": fund})
}

// ListFunds lists income records with the liquid balance summary.
// @Summary     List income
// @Tags        funds
// @Produce     json
// @Success     200 {object} services.FundOverview "Income and summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fondos [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	overview, err := h.fundService.ListFunds(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
