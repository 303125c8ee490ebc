package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"wunderwohn/internal/domain"
)

type BookingService struct {
	bookings   domain.BookingRepository
	properties domain.PropertyRepository
}

func NewBookingService(b domain.BookingRepository, p domain.PropertyRepository) *BookingService {
	return &BookingService{bookings: b, properties: p}
}

type BookingInput struct {
	PropertyID string
	CheckIn    domain.Date
	CheckOut   domain.Date
	Guests     int
}

// Create validates the request against the listing, prices the stay and
// persists it as confirmed. The total is a snapshot of the listing's nightly
// price at creation; later price edits never touch existing bookings.
//
// Guest count and past check-in dates are intentionally not validated.
//
// Known limitation: the overlap check and the insert are two store
// operations with no transaction between them, so two concurrent requests
// for the same dates can both pass the check.
func (s *BookingService) Create(ctx context.Context, caller domain.User, in BookingInput) (domain.Booking, error) {
	prop, err := s.properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return domain.Booking{}, err
	}

	nights := in.CheckIn.NightsUntil(in.CheckOut)
	if nights <= 0 {
		return domain.Booking{}, domain.ErrInvalidDateRange
	}

	n, err := s.bookings.CountOverlapping(ctx, prop.ID, in.CheckIn, in.CheckOut)
	if err != nil {
		return domain.Booking{}, err
	}
	if n > 0 {
		return domain.Booking{}, domain.ErrDateConflict
	}

	b := domain.Booking{
		ID:         uuid.NewString(),
		UserID:     caller.ID,
		PropertyID: prop.ID,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     in.Guests,
		TotalPrice: float64(nights) * prop.PricePerNight,
		Status:     domain.StatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.bookings.Insert(ctx, b); err != nil {
		return domain.Booking{}, err
	}

	log.Info().
		Str("booking", b.ID).
		Str("property", prop.ID).
		Int("nights", nights).
		Float64("total", b.TotalPrice).
		Msg("booking created")
	return b, nil
}

// List returns the caller's bookings (all bookings for admins), newest
// first, each joined with its listing. A booking whose listing has since
// been removed is still returned, with a nil Property.
func (s *BookingService) List(ctx context.Context, caller domain.User) ([]domain.BookingView, error) {
	var (
		bs  []domain.Booking
		err error
	)
	if caller.IsAdmin() {
		bs, err = s.bookings.ListAll(ctx)
	} else {
		bs, err = s.bookings.ListByUser(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]domain.BookingView, 0, len(bs))
	for _, b := range bs {
		v := domain.BookingView{Booking: b}
		p, perr := s.properties.GetByID(ctx, b.PropertyID)
		switch {
		case perr == nil:
			v.Property = &p
		case errors.Is(perr, domain.ErrNotFound):
			// dangling reference: keep the booking, don't fail the list
			log.Warn().Str("booking", b.ID).Str("property", b.PropertyID).Msg("booking references missing listing")
		default:
			return nil, perr
		}
		out = append(out, v)
	}
	return out, nil
}

// Cancel flips a booking to cancelled. Cancelled bookings stop counting
// toward date conflicts but stay on record.
func (s *BookingService) Cancel(ctx context.Context, caller domain.User, id string) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(caller, b); err != nil {
		return err
	}
	return s.bookings.SetStatus(ctx, id, domain.StatusCancelled)
}

// Delete removes a booking outright. No audit trail is kept.
func (s *BookingService) Delete(ctx context.Context, caller domain.User, id string) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(caller, b); err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("booking", id).Str("by", caller.ID).Msg("booking deleted")
	return nil
}

func authorize(caller domain.User, b domain.Booking) error {
	if b.UserID != caller.ID && !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
