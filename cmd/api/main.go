package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wunderwohn/internal/adapters/auth"
	server "wunderwohn/internal/adapters/http_server"
	"wunderwohn/internal/adapters/observability"
	redisad "wunderwohn/internal/adapters/redis"
	"wunderwohn/internal/app"
	"wunderwohn/internal/shared"
	mongorepo "wunderwohn/internal/storage/mongo"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// store
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo.Connect failed")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	cancel()
	log.Info().Msg("database connection ok")
	db := client.Database(cfg.MongoDB)

	// deps
	users := mongorepo.NewUserRepo(db)
	properties := mongorepo.NewPropertyRepo(db)
	bookings := mongorepo.NewBookingRepo(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	userSvc := app.NewUserService(users, auth.Bcrypt{}, tokens)
	propSvc := app.NewPropertyService(properties, cache, cfg.CacheTTL)
	bookSvc := app.NewBookingService(bookings, properties)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Users:      userSvc,
		Properties: propSvc,
		Bookings:   bookSvc,
		Auth:       server.Auth(tokens, users),
	})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
}
