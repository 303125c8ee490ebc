package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"wunderwohn/internal/domain"
)

type PropertyService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPropertyService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *PropertyService {
	return &PropertyService{repo: r, cache: c, cacheTTL: ttl}
}

type PropertyInput struct {
	Title         string
	Description   string
	PropertyType  string
	City          string
	State         string
	Address       string
	PricePerNight float64
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	Amenities     []string
	Images        []string
}

func (s *PropertyService) Create(ctx context.Context, in PropertyInput) (domain.Property, error) {
	p := domain.Property{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		PropertyType:  in.PropertyType,
		City:          in.City,
		State:         in.State,
		Address:       in.Address,
		PricePerNight: in.PricePerNight,
		MaxGuests:     in.MaxGuests,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		Amenities:     in.Amenities,
		Images:        in.Images,
		Available:     true,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (domain.Property, error) {
	key := "property:" + id
	var p domain.Property
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}

// Search applies the listing filters with the hard 100-result ceiling.
// Results are cached under a fingerprint of the criteria; staleness is
// bounded by the cache TTL.
func (s *PropertyService) Search(ctx context.Context, c domain.SearchCriteria) ([]domain.Property, error) {
	c = clampCriteria(c)
	if c.Limit == 0 {
		// the requested page starts past the result ceiling
		return nil, nil
	}
	key := searchKey(c)
	var cached []domain.Property
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out, err := s.repo.Search(ctx, c)
	if err != nil {
		return nil, err
	}

	// size guard: don't cache oversized result sets
	if b, err := json.Marshal(out); err == nil && len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// SetAvailability toggles whether a listing shows up in search and evicts
// its cache entry.
func (s *PropertyService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, "property:"+id)
	return nil
}

// Delete removes a listing and evicts its cache entry.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, "property:"+id)
	return nil
}

func clampCriteria(c domain.SearchCriteria) domain.SearchCriteria {
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Limit <= 0 || c.Limit > domain.MaxSearchResults {
		c.Limit = domain.MaxSearchResults
	}
	// the paging window must stay inside the first MaxSearchResults matches
	if c.Offset >= domain.MaxSearchResults {
		c.Limit = 0
	} else if c.Offset+c.Limit > domain.MaxSearchResults {
		c.Limit = domain.MaxSearchResults - c.Offset
	}
	return c
}

func searchKey(c domain.SearchCriteria) string {
	b, _ := json.Marshal(c)
	sum := sha1.Sum(b)
	return "search:" + hex.EncodeToString(sum[:])
}
