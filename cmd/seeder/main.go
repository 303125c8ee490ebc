package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wunderwohn/internal/adapters/auth"
	"wunderwohn/internal/adapters/observability"
	redisad "wunderwohn/internal/adapters/redis"
	"wunderwohn/internal/app"
	"wunderwohn/internal/domain"
	"wunderwohn/internal/shared"
	mongorepo "wunderwohn/internal/storage/mongo"
)

// The seeder loads the sample catalog and provisions the admin account. The
// default mode is idempotent: an already-populated catalog is left alone and
// an existing admin user is not recreated. With -refresh, listings that were
// never booked are replaced by a fresh copy of the catalog.
func main() {
	refresh := flag.Bool("refresh", false, "replace listings that have no bookings with a fresh catalog")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Bool("refresh", *refresh).Msg("seeder starting")

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo.Connect failed")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	cancel()
	db := client.Database(cfg.MongoDB)

	properties := mongorepo.NewPropertyRepo(db)
	bookings := mongorepo.NewBookingRepo(db)
	users := mongorepo.NewUserRepo(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	propSvc := app.NewPropertyService(properties, cache, cfg.CacheTTL)
	catalog := app.NewCatalogService(propSvc, properties, bookings, cfg.SeedWorkers)

	seedAdmin(ctx, users, cfg)

	if *refresh {
		removed, inserted, err := catalog.Refresh(ctx, sampleProperties)
		if err != nil {
			log.Fatal().Err(err).Msg("catalog refresh failed")
		}
		log.Info().Int("removed", removed).Int("inserted", inserted).Msg("catalog refreshed")
	} else {
		inserted, err := catalog.Seed(ctx, sampleProperties)
		if err != nil {
			log.Fatal().Err(err).Msg("catalog seed failed")
		}
		log.Info().Int("inserted", inserted).Msg("catalog seeded")
	}

	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	log.Info().Msg("seeding completed")
}

func seedAdmin(ctx context.Context, users *mongorepo.UserRepo, cfg shared.Config) {
	if _, err := users.GetByEmail(ctx, cfg.AdminEmail); err == nil {
		log.Info().Str("email", cfg.AdminEmail).Msg("admin account already exists")
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}
	if cfg.AdminPass == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set to seed the admin account")
	}

	hash, err := auth.Bcrypt{}.Hash(cfg.AdminPass)
	if err != nil {
		log.Fatal().Err(err).Msg("hashing admin password failed")
	}
	admin := domain.User{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Insert(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("admin insert failed")
	}
	log.Info().Str("email", admin.Email).Msg("admin account created")
}
