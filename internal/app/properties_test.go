package app_test

import (
	"context"
	"testing"
	"time"

	"wunderwohn/internal/app"
	"wunderwohn/internal/domain"
)

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Property:
		*d = v.(domain.Property)
	case *[]domain.Property:
		*d = v.([]domain.Property)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func TestGetProperty_CacheMissThenHit(t *testing.T) {
	repo := &fakePropertyRepo{props: map[string]domain.Property{"p1": testProperty("p1", 120)}}
	cache := &fakeCache{}
	svc := app.NewPropertyService(repo, cache, 10*time.Minute)

	// miss populates the cache
	p, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.PricePerNight != 120 {
		t.Fatalf("unexpected property: %+v", p)
	}

	// mutate repo to prove the second read is served from cache
	mut := repo.props["p1"]
	mut.PricePerNight = 999
	repo.props["p1"] = mut

	p2, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p2.PricePerNight != 120 {
		t.Fatalf("expected cached price 120, got %v", p2.PricePerNight)
	}
}

func TestSearch_ClampsLimitToCeiling(t *testing.T) {
	repo := &fakePropertyRepo{}
	svc := app.NewPropertyService(repo, &fakeCache{}, 10*time.Minute)

	for _, limit := range []int{0, -5, 101, 100000} {
		if _, err := svc.Search(context.Background(), domain.SearchCriteria{Limit: limit}); err != nil {
			t.Fatalf("err: %v", err)
		}
	}
	for i, c := range repo.searched {
		if c.Limit != domain.MaxSearchResults {
			t.Fatalf("call %d: limit not clamped: %d", i, c.Limit)
		}
	}

	if _, err := svc.Search(context.Background(), domain.SearchCriteria{Limit: 10, MinPrice: ptr(150.0)}); err != nil {
		t.Fatalf("err: %v", err)
	}
	last := repo.searched[len(repo.searched)-1]
	if last.Limit != 10 || last.MinPrice == nil || *last.MinPrice != 150.0 {
		t.Fatalf("criteria not passed through: %+v", last)
	}
}

func TestSearch_PagingStaysUnderCeiling(t *testing.T) {
	repo := &fakePropertyRepo{}
	svc := app.NewPropertyService(repo, &fakeCache{}, 10*time.Minute)

	// a window starting past the ceiling returns nothing and never queries
	// the store
	out, err := svc.Search(context.Background(), domain.SearchCriteria{Offset: 200})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 0 || len(repo.searched) != 0 {
		t.Fatalf("expected empty result without a store query, got %+v (%d queries)", out, len(repo.searched))
	}

	// a window straddling the ceiling shrinks to the remainder
	if _, err := svc.Search(context.Background(), domain.SearchCriteria{Offset: 60, Limit: 100}); err != nil {
		t.Fatalf("err: %v", err)
	}
	got := repo.searched[len(repo.searched)-1]
	if got.Offset != 60 || got.Limit != 40 {
		t.Fatalf("window escapes the ceiling: limit=%d offset=%d", got.Limit, got.Offset)
	}

	// the default limit shrinks the same way
	if _, err := svc.Search(context.Background(), domain.SearchCriteria{Offset: 90}); err != nil {
		t.Fatalf("err: %v", err)
	}
	got = repo.searched[len(repo.searched)-1]
	if got.Offset != 90 || got.Limit != 10 {
		t.Fatalf("window escapes the ceiling: limit=%d offset=%d", got.Limit, got.Offset)
	}
}

func TestSearch_CachedPerCriteria(t *testing.T) {
	repo := &fakePropertyRepo{searchOut: []domain.Property{testProperty("p1", 120)}}
	cache := &fakeCache{}
	svc := app.NewPropertyService(repo, cache, 10*time.Minute)

	city := "Berlin"
	out, err := svc.Search(context.Background(), domain.SearchCriteria{City: &city})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("unexpected results: %+v", out)
	}

	// change what the repo would return; same criteria must come from cache
	repo.searchOut = nil
	out2, err := svc.Search(context.Background(), domain.SearchCriteria{City: &city})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out2) != 1 {
		t.Fatalf("expected cached result set, got %+v", out2)
	}

	// different criteria is a different cache key
	other := "Munich"
	out3, err := svc.Search(context.Background(), domain.SearchCriteria{City: &other})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out3) != 0 {
		t.Fatalf("expected fresh repo result for new criteria, got %+v", out3)
	}
}

func TestSetAvailability_EvictsCachedListing(t *testing.T) {
	repo := &fakePropertyRepo{props: map[string]domain.Property{"p1": testProperty("p1", 120)}}
	cache := &fakeCache{}
	svc := app.NewPropertyService(repo, cache, 10*time.Minute)

	if _, err := svc.Get(context.Background(), "p1"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := svc.SetAvailability(context.Background(), "p1", false); err != nil {
		t.Fatalf("err: %v", err)
	}

	p, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.Available {
		t.Fatalf("expected fresh read after eviction to show unavailable")
	}
}

func TestCreateProperty_Defaults(t *testing.T) {
	repo := &fakePropertyRepo{}
	svc := app.NewPropertyService(repo, &fakeCache{}, 10*time.Minute)

	p, err := svc.Create(context.Background(), app.PropertyInput{Title: "Loft", PricePerNight: 140})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.ID == "" || !p.Available || p.CreatedAt.IsZero() {
		t.Fatalf("missing defaults: %+v", p)
	}
}
