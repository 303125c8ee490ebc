package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wunderwohn/internal/domain"
)

type BookingRepo struct{ col *mongo.Collection }

func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{col: db.Collection(colBookings)}
}

// bookingDoc stores the check-in/out dates as ISO-8601 strings; their
// lexicographic order matches calendar order, which the overlap filter
// relies on.
type bookingDoc struct {
	ID         string    `bson:"id"`
	UserID     string    `bson:"user_id"`
	PropertyID string    `bson:"property_id"`
	CheckIn    string    `bson:"check_in"`
	CheckOut   string    `bson:"check_out"`
	Guests     int       `bson:"guests"`
	TotalPrice float64   `bson:"total_price"`
	Status     string    `bson:"status"`
	CreatedAt  time.Time `bson:"created_at"`
}

func fromBooking(b domain.Booking) bookingDoc {
	return bookingDoc{
		ID:         b.ID,
		UserID:     b.UserID,
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn.String(),
		CheckOut:   b.CheckOut.String(),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (d bookingDoc) toBooking() (domain.Booking, error) {
	in, err := domain.ParseDate(d.CheckIn)
	if err != nil {
		return domain.Booking{}, err
	}
	out, err := domain.ParseDate(d.CheckOut)
	if err != nil {
		return domain.Booking{}, err
	}
	return domain.Booking{
		ID:         d.ID,
		UserID:     d.UserID,
		PropertyID: d.PropertyID,
		CheckIn:    in,
		CheckOut:   out,
		Guests:     d.Guests,
		TotalPrice: d.TotalPrice,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func (r *BookingRepo) Insert(ctx context.Context, b domain.Booking) error {
	start := time.Now()
	_, err := r.col.InsertOne(ctx, fromBooking(b))
	observe(colBookings, "insert", start, err)
	return wrap("insert booking", err)
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (domain.Booking, error) {
	start := time.Now()
	var d bookingDoc
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	observe(colBookings, "find_one", start, err)
	if err != nil {
		return domain.Booking{}, wrap("get booking", err)
	}
	return d.toBooking()
}

func (r *BookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *BookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepo) list(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	start := time.Now()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		observe(colBookings, "find", start, err)
		return nil, wrap("list bookings", err)
	}
	defer cur.Close(ctx)

	var out []domain.Booking
	for cur.Next(ctx) {
		var d bookingDoc
		if err := cur.Decode(&d); err != nil {
			observe(colBookings, "find", start, err)
			return nil, wrap("decode booking", err)
		}
		b, err := d.toBooking()
		if err != nil {
			observe(colBookings, "find", start, err)
			return nil, wrap("decode booking", err)
		}
		out = append(out, b)
	}
	err = cur.Err()
	observe(colBookings, "find", start, err)
	if err != nil {
		return nil, wrap("list bookings", err)
	}
	return out, nil
}

func (r *BookingRepo) CountOverlapping(ctx context.Context, propertyID string, in, out domain.Date) (int64, error) {
	start := time.Now()
	n, err := r.col.CountDocuments(ctx, overlapFilter(propertyID, in, out))
	observe(colBookings, "count", start, err)
	return n, wrap("count overlapping", err)
}

func (r *BookingRepo) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	start := time.Now()
	n, err := r.col.CountDocuments(ctx, bson.M{"property_id": propertyID})
	observe(colBookings, "count", start, err)
	return n, wrap("count bookings by property", err)
}

func (r *BookingRepo) SetStatus(ctx context.Context, id, status string) error {
	start := time.Now()
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	observe(colBookings, "update", start, err)
	if err != nil {
		return wrap("set booking status", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	start := time.Now()
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	observe(colBookings, "delete", start, err)
	if err != nil {
		return wrap("delete booking", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
