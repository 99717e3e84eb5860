package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	t.Run("app_error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/x", func(c *gin.Context) {
			_ = c.Error(apperrors.ErrOverrideNotFound)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "OVERRIDE_NOT_FOUND") {
			t.Errorf("expected error code in body, got %s", rec.Body.String())
		}
	})

	t.Run("unexpected_error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/x", func(c *gin.Context) {
			_ = c.Error(context.DeadlineExceeded)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "deadline") {
			t.Error("internal error details must not leak")
		}
	})
}

func TestRequestLogging(t *testing.T) {
	t.Run("generates_request_id", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestLogging())
		var scoped bool
		r.GET("/x", func(c *gin.Context) {
			scoped = logger.FromContext(c.Request.Context()) != logger.Get()
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		if !scoped {
			t.Error("expected a request-scoped logger in the request context")
		}
	})

	t.Run("reuses_incoming_request_id", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestLogging())
		var inContext string
		r.GET("/x", func(c *gin.Context) {
			inContext = logger.RequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
		if inContext != "abc-123" {
			t.Errorf("expected request id in context, got %q", inContext)
		}
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/categorias/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/categorias/1", "/categorias/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	got := testutil.ToFloat64(m.requestCount.WithLabelValues("200", http.MethodGet, "/categorias/:id"))
	if got != 2 {
		t.Errorf("expected 2 requests on the route template, got %v", got)
	}

	if _, err := NewMetrics(reg); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}
