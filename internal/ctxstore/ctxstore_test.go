package ctxstore_test

import (
	"context"
	"testing"

	"github.com/protomem/schedule-app/internal/ctxstore"
)

func TestWithFrom(t *testing.T) {
	ctx := ctxstore.With(context.Background(), "key", 42)

	value, ok := ctxstore.From[int](ctx, "key")
	if !ok || value != 42 {
		t.Errorf("got (%v, %v), want (42, true)", value, ok)
	}

	if _, ok := ctxstore.From[int](ctx, "missing"); ok {
		t.Error("missing key must not be found")
	}

	if _, ok := ctxstore.From[string](ctx, "key"); ok {
		t.Error("wrong type must not be found")
	}
}

func TestMustFrom(t *testing.T) {
	ctx := ctxstore.With(context.Background(), "key", "value")

	if got := ctxstore.MustFrom[string](ctx, "key"); got != "value" {
		t.Errorf("got %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing key")
		}
	}()
	ctxstore.MustFrom[string](context.Background(), "missing")
}
