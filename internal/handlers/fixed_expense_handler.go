package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/services"
)

// FixedExpenseHandler handles fixed-expense requests.
type FixedExpenseHandler struct {
	fixedExpenseService services.FixedExpenseServicer
	auditService        services.AuditServicer
}

// NewFixedExpenseHandler creates a new FixedExpenseHandler.
func NewFixedExpenseHandler(fixedExpenseService services.FixedExpenseServicer, auditService services.AuditServicer) *FixedExpenseHandler {
	return &FixedExpenseHandler{fixedExpenseService: fixedExpenseService, auditService: auditService}
}

// CreateFixedExpenseRequest represents the request payload for creating a fixed expense.
type CreateFixedExpenseRequest struct {
	Name            string               `json:"nombre" binding:"required,min=1,max=100"`
	CategoryID      *uint                `json:"categoria_id"`
	DueDay          int                  `json:"dia_vencimiento" binding:"required,min=1,max=31"`
	ProvisionAmount int64                `json:"monto_provision" binding:"gte=0"`
	PaymentMethod   models.PaymentMethod `json:"metodo_pago" binding:"omitempty,payment_method"`
}

// UpdateFixedExpenseRequest represents the request payload for updating a fixed expense.
type UpdateFixedExpenseRequest struct {
	Name            *string               `json:"nombre" binding:"omitempty,min=1,max=100"`
	CategoryID      *uint                 `json:"categoria_id"`
	DueDay          *int                  `json:"dia_vencimiento" binding:"omitempty,min=1,max=31"`
	ProvisionAmount *int64                `json:"monto_provision" binding:"omitempty,gte=0"`
	PaymentMethod   *models.PaymentMethod `json:"metodo_pago" binding:"omitempty,payment_method"`
	Active          *bool                 `json:"activo"`
}

// CreateFixedExpense handles the creation of a fixed expense.
// @Summary     Create a fixed expense
// @Tags        fixed-expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateFixedExpenseRequest true "Fixed expense details"
// @Success     201 {object} models.FixedExpense "Fixed expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos-fijos [post]
func (h *FixedExpenseHandler) CreateFixedExpense(c *gin.Context) {
	var req CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.fixedExpenseService.CreateFixedExpense(c.Request.Context(), services.FixedExpenseInput{
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		DueDay:          req.DueDay,
		ProvisionAmount: req.ProvisionAmount,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "CREATE_FIXED_EXPENSE", "fixed_expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"nombre": req.Name, "monto_provision": req.ProvisionAmount})

	c.JSON(http.StatusCreated, gin.H{"gasto_fijo": expense})
}

// ListFixedExpenses lists fixed expenses.
// @Summary     List fixed expenses
// @Tags        fixed-expenses
// @Produce     json
// @Param       activo query bool false "Filter by active flag"
// @Success     200 {array} models.FixedExpense "Fixed expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos-fijos [get]
func (h *FixedExpenseHandler) ListFixedExpenses(c *gin.Context) {
	var active *bool
	if v := c.Query("activo"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "activo must be true or false"))
			return
		}
		active = &b
	}

	expenses, err := h.fixedExpenseService.ListFixedExpenses(c.Request.Context(), active)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if expenses == nil {
		expenses = []models.FixedExpense{}
	}

	c.JSON(http.StatusOK, gin.H{"gastos_fijos": expenses})
}

// GetFixedExpenseByID returns one fixed expense.
// @Summary     Get fixed expense by ID
// @Tags        fixed-expenses
// @Produce     json
// @Param       id path int true "Fixed expense ID"
// @Success     200 {object} models.FixedExpense "Fixed expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos-fijos/{id} [get]
func (h *FixedExpenseHandler) GetFixedExpenseByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.fixedExpenseService.GetFixedExpenseByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gasto_fijo": expense})
}

// UpdateFixedExpense changes a fixed expense.
// @Summary     Update fixed expense
// @Tags        fixed-expenses
// @Accept      json
// @Produce     json
// @Param       id path int true "Fixed expense ID"
// @Param       request body UpdateFixedExpenseRequest true "Fields to change"
// @Success     200 {object} models.FixedExpense "Fixed expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos-fijos/{id} [put]
func (h *FixedExpenseHandler) UpdateFixedExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.fixedExpenseService.UpdateFixedExpense(c.Request.Context(), id, services.FixedExpenseUpdate{
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		DueDay:          req.DueDay,
		ProvisionAmount: req.ProvisionAmount,
		PaymentMethod:   req.PaymentMethod,
		Active:          req.Active,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "UPDATE_FIXED_EXPENSE", "fixed_expense", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"gasto_fijo": expense})
}

// DeactivateFixedExpense marks a fixed expense inactive.
// @Summary     Deactivate fixed expense
// @Description Fixed expenses are deactivated rather than deleted
// @Tags        fixed-expenses
// @Produce     json
// @Param       id path int true "Fixed expense ID"
// @Success     200 {object} MessageResponse "Fixed expense deactivated"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos-fijos/{id} [delete]
func (h *FixedExpenseHandler) DeactivateFixedExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.fixedExpenseService.DeactivateFixedExpense(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "DEACTIVATE_FIXED_EXPENSE", "fixed_expense", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Fixed expense deactivated successfully"})
}
