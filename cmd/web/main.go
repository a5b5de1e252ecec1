package main

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/aladhan"
	"github.com/mdayat/qaza-tracker-service/internal/handlers"
	"github.com/mdayat/qaza-tracker-service/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	logger := log.With().Caller().Logger()

	env, err := configs.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	ctx := context.TODO()
	db, err := configs.NewDb(ctx, env.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	redisClient, err := configs.NewRedis(ctx, env.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	defer redisClient.Close()

	configs := configs.NewConfigs(env, db, redisClient)
	aladhanClient := aladhan.NewClient(env.AladhanBaseURL, nil)
	qazaCache := services.NewRedisQazaCache(redisClient)

	authService := services.NewAuthService(configs)
	authenticator := handlers.NewProdAuthenticator(authService)
	customMiddleware := handlers.NewMiddlewareHandler(configs, authenticator)

	router := handlers.NewRestHandler(configs, customMiddleware, handlers.Services{
		Auth:         authService,
		User:         services.NewUserService(configs, qazaCache),
		Config:       services.NewConfigService(configs),
		PrayerWindow: services.NewPrayerWindowService(configs, aladhanClient, qazaCache),
		Tracker:      services.NewTrackerService(configs, qazaCache),
	})

	logger.Info().Str("addr", ":8080").Msg("listening")
	if err := http.ListenAndServe(":8080", router); err != nil {
		logger.Fatal().Err(err).Send()
	}
}
