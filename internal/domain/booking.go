package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID         string
	UserID     string
	PropertyID string
	CheckIn    Date
	CheckOut   Date
	Guests     int
	TotalPrice float64
	Status     string // confirmed|cancelled
	CreatedAt  time.Time
}

func (b Booking) Nights() int { return b.CheckIn.NightsUntil(b.CheckOut) }

// BookingView joins a booking with its referenced listing. Property is nil
// when the listing has been removed since the booking was made; the booking
// itself is still returned.
type BookingView struct {
	Booking  Booking
	Property *Property
}

// Date is a calendar date without time-of-day. It travels as an ISO-8601
// date string (2006-01-02) on the wire and in the store.
type Date struct{ t time.Time }

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string     { return d.t.Format(dateLayout) }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// NightsUntil counts the nights from d to out; zero or negative means an
// empty or inverted range.
func (d Date) NightsUntil(out Date) int {
	return int(out.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	p, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = p
	return nil
}
