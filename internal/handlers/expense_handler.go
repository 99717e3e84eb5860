package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/pagination"
	"finanzas/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
// Cuotas greater than one splits the amount into monthly installments.
type CreateExpenseRequest struct {
	Date          string               `json:"fecha" binding:"required"`
	Amount        int64                `json:"monto" binding:"required,gt=0"`
	CategoryID    *uint                `json:"categoria_id"`
	PaymentMethod models.PaymentMethod `json:"metodo_pago" binding:"omitempty,payment_method"`
	Description   string               `json:"descripcion" binding:"max=500"`
	Paid          bool                 `json:"pagado"`
	Installments  int                  `json:"cuotas" binding:"omitempty,min=1,max=48"`
}

// CreateExpense records an expense, or one row per installment.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {array} models.Expense "Expenses created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid fecha format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	expenses, err := h.expenseService.CreateExpense(c.Request.Context(), services.ExpenseInput{
		Date:          date,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		Paid:          req.Paid,
		Installments:  req.Installments,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "CREATE_EXPENSE", "expense", expenses[0].ID, c.ClientIP(),
		map[string]interface{}{"monto": req.Amount, "cuotas": len(expenses)})

	c.JSON(http.StatusCreated, gin.H{"gastos": expenses})
}

// ListExpenses returns a page of expenses.
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Param       pagina query int false "Page number (default 1)"
// @Param       por_pagina query int false "Items per page (default 20, max 100)"
// @Param       fecha_inicio query string false "From date (YYYY-MM-DD)"
// @Param       fecha_fin query string false "To date, inclusive (YYYY-MM-DD)"
// @Param       metodo_pago query string false "efectivo or tarjeta"
// @Param       categoria_id query int false "Category ID"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	if v := c.Query("fecha_inicio"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid fecha_inicio format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("fecha_fin"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid fecha_fin format, use RFC3339 or YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	if v := c.Query("metodo_pago"); v != "" {
		method := models.PaymentMethod(v)
		switch method {
		case models.PaymentMethodCash, models.PaymentMethodCard:
			filter.PaymentMethod = &method
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid metodo_pago, must be efectivo or tarjeta")
		}
	}

	categoryID, err := parseOptionalUint(c, "categoria_id")
	if err != nil {
		return filter, err
	}
	filter.CategoryID = categoryID

	return filter, nil
}

// GetExpenseByID returns one expense.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gasto": expense})
}

// DeleteExpense deletes one expense row.
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "DELETE_EXPENSE", "expense", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}
