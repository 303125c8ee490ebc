package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wunderwohn/internal/domain"
)

type PropertyRepo struct{ col *mongo.Collection }

func NewPropertyRepo(db *mongo.Database) *PropertyRepo {
	return &PropertyRepo{col: db.Collection(colProperties)}
}

type propertyDoc struct {
	ID            string    `bson:"id"`
	Title         string    `bson:"title"`
	Description   string    `bson:"description"`
	PropertyType  string    `bson:"property_type"`
	City          string    `bson:"city"`
	State         string    `bson:"state"`
	Address       string    `bson:"address"`
	PricePerNight float64   `bson:"price_per_night"`
	MaxGuests     int       `bson:"max_guests"`
	Bedrooms      int       `bson:"bedrooms"`
	Bathrooms     int       `bson:"bathrooms"`
	Amenities     []string  `bson:"amenities"`
	Images        []string  `bson:"images"`
	Available     bool      `bson:"available"`
	CreatedAt     time.Time `bson:"created_at"`
}

func fromProperty(p domain.Property) propertyDoc {
	return propertyDoc(p)
}

func (d propertyDoc) toProperty() domain.Property {
	return domain.Property(d)
}

func (r *PropertyRepo) Insert(ctx context.Context, p domain.Property) error {
	start := time.Now()
	_, err := r.col.InsertOne(ctx, fromProperty(p))
	observe(colProperties, "insert", start, err)
	return wrap("insert property", err)
}

func (r *PropertyRepo) GetByID(ctx context.Context, id string) (domain.Property, error) {
	start := time.Now()
	var d propertyDoc
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	observe(colProperties, "find_one", start, err)
	if err != nil {
		return domain.Property{}, wrap("get property", err)
	}
	return d.toProperty(), nil
}

func (r *PropertyRepo) Search(ctx context.Context, c domain.SearchCriteria) ([]domain.Property, error) {
	start := time.Now()
	opts := options.Find().SetLimit(int64(c.Limit))
	if c.Offset > 0 {
		opts = opts.SetSkip(int64(c.Offset))
	}
	cur, err := r.col.Find(ctx, searchFilter(c), opts)
	if err != nil {
		observe(colProperties, "find", start, err)
		return nil, wrap("search properties", err)
	}
	defer cur.Close(ctx)

	var out []domain.Property
	for cur.Next(ctx) {
		var d propertyDoc
		if err := cur.Decode(&d); err != nil {
			observe(colProperties, "find", start, err)
			return nil, wrap("decode property", err)
		}
		out = append(out, d.toProperty())
	}
	err = cur.Err()
	observe(colProperties, "find", start, err)
	if err != nil {
		return nil, wrap("search properties", err)
	}
	return out, nil
}

func (r *PropertyRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	start := time.Now()
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"available": available}})
	observe(colProperties, "update", start, err)
	if err != nil {
		return wrap("set availability", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	start := time.Now()
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	observe(colProperties, "delete", start, err)
	if err != nil {
		return wrap("delete property", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepo) ListIDs(ctx context.Context) ([]string, error) {
	start := time.Now()
	opts := options.Find().SetProjection(bson.M{"id": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		observe(colProperties, "find", start, err)
		return nil, wrap("list property ids", err)
	}
	defer cur.Close(ctx)

	var out []string
	for cur.Next(ctx) {
		var d struct {
			ID string `bson:"id"`
		}
		if err := cur.Decode(&d); err != nil {
			observe(colProperties, "find", start, err)
			return nil, wrap("decode property id", err)
		}
		out = append(out, d.ID)
	}
	err = cur.Err()
	observe(colProperties, "find", start, err)
	if err != nil {
		return nil, wrap("list property ids", err)
	}
	return out, nil
}

func (r *PropertyRepo) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := r.col.CountDocuments(ctx, bson.M{})
	observe(colProperties, "count", start, err)
	return n, wrap("count properties", err)
}
