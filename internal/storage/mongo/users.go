package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wunderwohn/internal/domain"
)

type UserRepo struct{ col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(colUsers)}
}

// userDoc is the stored shape. It carries our generated id only; Mongo's
// own _id is not mapped, so the store identity never reaches callers.
type userDoc struct {
	ID           string    `bson:"id"`
	Email        string    `bson:"email"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

func fromUser(u domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDoc) toUser() domain.User {
	return domain.User{
		ID:           d.ID,
		Email:        d.Email,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		CreatedAt:    d.CreatedAt,
	}
}

func (r *UserRepo) Insert(ctx context.Context, u domain.User) error {
	start := time.Now()
	_, err := r.col.InsertOne(ctx, fromUser(u))
	observe(colUsers, "insert", start, err)
	return wrap("insert user", err)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx, bson.M{"id": id})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) getOne(ctx context.Context, filter bson.M) (domain.User, error) {
	start := time.Now()
	var d userDoc
	err := r.col.FindOne(ctx, filter).Decode(&d)
	observe(colUsers, "find_one", start, err)
	if err != nil {
		return domain.User{}, wrap("get user", err)
	}
	return d.toUser(), nil
}
