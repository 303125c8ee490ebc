package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"wunderwohn/internal/domain"
)

// CatalogService loads the sample catalog into the store. Seed is the
// idempotent first-run path; Refresh replaces listings that were never
// booked.
type CatalogService struct {
	props    *PropertyService
	repo     domain.PropertyRepository
	bookings domain.BookingRepository
	workers  int64
}

func NewCatalogService(props *PropertyService, repo domain.PropertyRepository, bookings domain.BookingRepository, workers int) *CatalogService {
	return &CatalogService{props: props, repo: repo, bookings: bookings, workers: int64(workers)}
}

// Seed inserts the catalog into an empty store and reports how many listings
// went in. A non-empty catalog is left alone.
func (s *CatalogService) Seed(ctx context.Context, inputs []PropertyInput) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("count", n).Msg("catalog already populated")
		return 0, nil
	}
	return s.insert(ctx, inputs), nil
}

// Refresh removes every listing without a booking, then reloads the catalog.
// A listing with any booking on record, cancelled included, stays in place so
// existing bookings keep a valid reference.
func (s *CatalogService) Refresh(ctx context.Context, inputs []PropertyInput) (removed, inserted int, err error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, id := range ids {
		n, err := s.bookings.CountByProperty(ctx, id)
		if err != nil {
			return removed, 0, err
		}
		if n > 0 {
			continue
		}
		if err := s.props.Delete(ctx, id); err != nil {
			return removed, 0, err
		}
		removed++
	}
	return removed, s.insert(ctx, inputs), nil
}

// insert fans the catalog out over a bounded worker pool. Individual failures
// are logged and skipped.
func (s *CatalogService) insert(ctx context.Context, inputs []PropertyInput) int {
	sem := semaphore.NewWeighted(s.workers)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for _, in := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("catalog insert aborted")
			break
		}
		wg.Add(1)
		go func(p PropertyInput) {
			defer wg.Done()
			defer sem.Release(1)

			created, err := s.props.Create(ctx, p)
			if err != nil {
				log.Warn().Str("title", p.Title).Err(err).Msg("catalog insert failed")
				return
			}
			mu.Lock()
			ok++
			mu.Unlock()
			log.Info().Str("id", created.ID).Str("city", created.City).Msg("seeded listing")
		}(in)
	}
	wg.Wait()
	return ok
}
