package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "wunderwohn/internal/adapters/redis"
	"wunderwohn/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var missing domain.Property
	ok, err := c.Get(ctx, "property:p1", &missing)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected a miss")
	}

	p := domain.Property{ID: "p1", Title: "Loft", PricePerNight: 140, Available: true}
	if err := c.Set(ctx, "property:p1", p, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Property
	ok, err = c.Get(ctx, "property:p1", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got.ID != "p1" || got.PricePerNight != 140 {
		t.Fatalf("unexpected value: ok=%v %+v", ok, got)
	}

	if err := c.Del(ctx, "property:p1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "property:p1", &got)
	if ok {
		t.Fatalf("expected a miss after delete")
	}
}

func TestCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var got string
	ok, err := c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected entry to have expired")
	}
}
