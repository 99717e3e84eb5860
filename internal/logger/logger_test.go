package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	t.Run("falls_back_to_global", func(t *testing.T) {
		if FromContext(context.Background()) != Get() {
			t.Error("expected global logger when context carries none")
		}
	})

	t.Run("returns_scoped_logger", func(t *testing.T) {
		scoped := zap.NewNop().Sugar()
		ctx := NewContext(context.Background(), scoped)
		if FromContext(ctx) != scoped {
			t.Error("expected the logger stored in the context")
		}
	})
}

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
	ctx := WithRequestID(context.Background(), "abc")
	if got := RequestID(ctx); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}
