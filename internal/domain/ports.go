package domain

import "context"

type UserRepository interface {
	Insert(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type PropertyRepository interface {
	Insert(ctx context.Context, p Property) error
	GetByID(ctx context.Context, id string) (Property, error)
	Search(ctx context.Context, c SearchCriteria) ([]Property, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
	ListIDs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, b Booking) error
	GetByID(ctx context.Context, id string) (Booking, error)
	// ListByUser and ListAll return bookings newest-first.
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	ListAll(ctx context.Context) ([]Booking, error)
	// CountOverlapping counts confirmed bookings for the property whose
	// [CheckIn, CheckOut) range intersects [in, out).
	CountOverlapping(ctx context.Context, propertyID string, in, out Date) (int64, error)
	// CountByProperty counts all bookings for the property, regardless of
	// status.
	CountByProperty(ctx context.Context, propertyID string) (int64, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// PasswordHasher and TokenIssuer keep the credential primitives out of the
// application services; the adapters own bcrypt and JWT.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

type TokenIssuer interface {
	Issue(u User) (string, error)
}
