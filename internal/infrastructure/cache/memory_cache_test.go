package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewMemoryCache()
		if _, ok := c.Get(ctx, "nope"); ok {
			t.Fatalf("expected miss")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok := c.Get(ctx, "k")
		if !ok || v != "v" {
			t.Fatalf("expected hit, got %q ok=%v", v, ok)
		}
	})

	t.Run("expired entry is dropped", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "k", "v", time.Nanosecond); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
		if _, ok := c.Get(ctx, "k"); ok {
			t.Fatalf("expected expiry")
		}
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "k", "v", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.Get(ctx, "k"); !ok {
			t.Fatalf("expected hit")
		}
	})
}
