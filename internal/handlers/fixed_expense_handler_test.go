package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/services"
)

type mockFixedExpenseService struct {
	createFixedExpenseFn     func(ctx context.Context, in services.FixedExpenseInput) (*models.FixedExpense, error)
	listFixedExpensesFn      func(ctx context.Context, active *bool) ([]models.FixedExpense, error)
	getFixedExpenseByIDFn    func(ctx context.Context, id uint) (*models.FixedExpense, error)
	updateFixedExpenseFn     func(ctx context.Context, id uint, in services.FixedExpenseUpdate) (*models.FixedExpense, error)
	deactivateFixedExpenseFn func(ctx context.Context, id uint) error
}

func (m *mockFixedExpenseService) CreateFixedExpense(ctx context.Context, in services.FixedExpenseInput) (*models.FixedExpense, error) {
	if m.createFixedExpenseFn != nil {
		return m.createFixedExpenseFn(ctx, in)
	}
	return &models.FixedExpense{}, nil
}

func (m *mockFixedExpenseService) ListFixedExpenses(ctx context.Context, active *bool) ([]models.FixedExpense, error) {
	if m.listFixedExpensesFn != nil {
		return m.listFixedExpensesFn(ctx, active)
	}
	return nil, nil
}

func (m *mockFixedExpenseService) GetFixedExpenseByID(ctx context.Context, id uint) (*models.FixedExpense, error) {
	if m.getFixedExpenseByIDFn != nil {
		return m.getFixedExpenseByIDFn(ctx, id)
	}
	return &models.FixedExpense{}, nil
}

func (m *mockFixedExpenseService) UpdateFixedExpense(ctx context.Context, id uint, in services.FixedExpenseUpdate) (*models.FixedExpense, error) {
	if m.updateFixedExpenseFn != nil {
		return m.updateFixedExpenseFn(ctx, id, in)
	}
	return &models.FixedExpense{}, nil
}

func (m *mockFixedExpenseService) DeactivateFixedExpense(ctx context.Context, id uint) error {
	if m.deactivateFixedExpenseFn != nil {
		return m.deactivateFixedExpenseFn(ctx, id)
	}
	return nil
}

var _ services.FixedExpenseServicer = (*mockFixedExpenseService)(nil)

func setupFixedExpenseRouter(handler *FixedExpenseHandler) *gin.Engine {
	r := gin.New()
	r.POST("/gastos-fijos", handler.CreateFixedExpense)
	r.GET("/gastos-fijos", handler.ListFixedExpenses)
	r.GET("/gastos-fijos/:id", handler.GetFixedExpenseByID)
	r.PUT("/gastos-fijos/:id", handler.UpdateFixedExpense)
	r.DELETE("/gastos-fijos/:id", handler.DeactivateFixedExpense)
	return r
}

func TestFixedExpenseHandler_CreateFixedExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.FixedExpenseInput
		svc := &mockFixedExpenseService{
			createFixedExpenseFn: func(_ context.Context, in services.FixedExpenseInput) (*models.FixedExpense, error) {
				got = in
				return &models.FixedExpense{Base: models.Base{ID: 2}, Name: in.Name, ProvisionAmount: in.ProvisionAmount}, nil
			},
		}
		handler := NewFixedExpenseHandler(svc, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "POST", "/gastos-fijos",
			`{"nombre":"Arriendo","dia_vencimiento":5,"monto_provision":500000,"metodo_pago":"tarjeta"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Name != "Arriendo" || got.DueDay != 5 || got.PaymentMethod != models.PaymentMethodCard {
			t.Errorf("unexpected input %+v", got)
		}
		fe := parseJSON(t, rec)["gasto_fijo"].(map[string]interface{})
		if fe["monto_provision"] != float64(500000) {
			t.Errorf("unexpected response %v", fe)
		}
	})

	t.Run("returns 400 on due day out of range", func(t *testing.T) {
		handler := NewFixedExpenseHandler(&mockFixedExpenseService{}, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "POST", "/gastos-fijos", `{"nombre":"Arriendo","dia_vencimiento":32,"monto_provision":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown payment method", func(t *testing.T) {
		handler := NewFixedExpenseHandler(&mockFixedExpenseService{}, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "POST", "/gastos-fijos",
			`{"nombre":"Arriendo","dia_vencimiento":5,"monto_provision":1,"metodo_pago":"cheque"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestFixedExpenseHandler_ListFixedExpenses(t *testing.T) {
	t.Run("parses activo filter", func(t *testing.T) {
		var got *bool
		svc := &mockFixedExpenseService{
			listFixedExpensesFn: func(_ context.Context, active *bool) ([]models.FixedExpense, error) {
				got = active
				return nil, nil
			},
		}
		handler := NewFixedExpenseHandler(svc, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "GET", "/gastos-fijos?activo=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || !*got {
			t.Errorf("expected activo=true filter, got %v", got)
		}
		if list, ok := parseJSON(t, rec)["gastos_fijos"].([]interface{}); !ok || len(list) != 0 {
			t.Error("expected empty array")
		}
	})

	t.Run("returns 400 on invalid activo", func(t *testing.T) {
		handler := NewFixedExpenseHandler(&mockFixedExpenseService{}, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "GET", "/gastos-fijos?activo=quizas", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestFixedExpenseHandler_UpdateFixedExpense(t *testing.T) {
	t.Run("forwards optional fields", func(t *testing.T) {
		var got services.FixedExpenseUpdate
		svc := &mockFixedExpenseService{
			updateFixedExpenseFn: func(_ context.Context, _ uint, in services.FixedExpenseUpdate) (*models.FixedExpense, error) {
				got = in
				return &models.FixedExpense{}, nil
			},
		}
		handler := NewFixedExpenseHandler(svc, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/gastos-fijos/2", `{"monto_provision":450000,"activo":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.ProvisionAmount == nil || *got.ProvisionAmount != 450000 || got.Active == nil || *got.Active {
			t.Errorf("unexpected update %+v", got)
		}
		if got.Name != nil || got.DueDay != nil {
			t.Error("absent fields must stay nil")
		}
	})
}

func TestFixedExpenseHandler_DeactivateFixedExpense(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockFixedExpenseService{
			deactivateFixedExpenseFn: func(context.Context, uint) error { return apperrors.ErrFixedExpenseNotFound },
		}
		handler := NewFixedExpenseHandler(svc, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/gastos-fijos/9", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FIXED_EXPENSE_NOT_FOUND")
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewFixedExpenseHandler(&mockFixedExpenseService{}, &mockAuditService{})
		r := setupFixedExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/gastos-fijos/9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
