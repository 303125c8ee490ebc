package mongo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"wunderwohn/internal/adapters/observability"
	"wunderwohn/internal/domain"
)

const (
	colUsers      = "users"
	colProperties = "properties"
	colBookings   = "bookings"
)

// observe records one store round-trip.
func observe(collection, op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	observability.ObserveStore(collection, op, status, time.Since(start))
}

// wrap maps driver errors into the domain taxonomy: a missing document is
// domain.ErrNotFound, anything else stays a store error so callers can tell
// "request invalid" apart from "store unavailable".
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("mongo: %s: %w", op, err)
}
