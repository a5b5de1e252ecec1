package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/internal/services"
	"github.com/mdayat/qaza-tracker-service/repository"
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

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	db, err := configs.NewDb(ctx, env.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	config := configs.Configs{
		Env: env,
		Db:  db,
	}

	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -2)

	// Seed "ramadan_config" table
	_, err = retryutil.RetryWithData(func() (repository.RamadanConfig, error) {
		return db.Queries.UpsertRamadanConfig(ctx, repository.UpsertRamadanConfigParams{
			TotalDays: 30,
			StartDate: pgtype.Date{Time: startDate, Valid: true},
		})
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed ramadan_config table")
	}

	// Seed "user" table
	hash, err := argon2id.CreateHash("example", argon2id.DefaultParams)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to hash password")
	}

	user, err := retryutil.RetryWithData(func() (repository.User, error) {
		return db.Queries.InsertUser(ctx, repository.InsertUserParams{
			ID:       pgtype.UUID{Bytes: uuid.New(), Valid: true},
			Email:    "example@gmail.com",
			Name:     "example",
			Password: hash,
		})
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed user table")
	}

	// Seed "user_setting" table
	_, err = retryutil.RetryWithData(func() (repository.UserSetting, error) {
		return db.Queries.UpsertUserSetting(ctx, repository.UpsertUserSettingParams{
			UserID:    user.ID,
			CityName:  "Jakarta",
			Latitude:  -6.175110,
			Longitude: 106.865036,
			Timezone:  "Asia/Jakarta",
		})
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed user_setting table")
	}

	// Seed "day_record" table with a fully kept first day
	done := pgtype.Bool{Bool: true, Valid: true}
	_, err = retryutil.RetryWithData(func() (repository.DayRecord, error) {
		return db.Queries.UpsertUserDayRecord(ctx, repository.UpsertUserDayRecordParams{
			ID:        pgtype.UUID{Bytes: uuid.New(), Valid: true},
			UserID:    user.ID,
			DayNumber: 1,
			Date:      pgtype.Date{Time: startDate, Valid: true},
			Fajr:      done,
			Dhuhr:     done,
			Asr:       done,
			Maghrib:   done,
			Isha:      done,
			Fast:      done,
		})
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed day_record table")
	}

	// Seed "refresh_token" table
	authService := services.NewAuthService(config)
	refreshTokenClaims := services.RefreshTokenClaims{
		Type: services.Refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Env.OriginURL,
			Subject:   user.ID.String(),
		},
	}

	refreshToken, err := authService.CreateRefreshToken(refreshTokenClaims)
	if err != nil {
		logger.Fatal().Err(fmt.Errorf("failed to create refresh token: %w", err)).Send()
	}

	jti, err := uuid.Parse(refreshTokenClaims.ID)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	_, err = retryutil.RetryWithData(func() (repository.RefreshToken, error) {
		return db.Queries.InsertUserRefreshToken(ctx, repository.InsertUserRefreshTokenParams{
			ID:        pgtype.UUID{Bytes: jti, Valid: true},
			UserID:    user.ID,
			ExpiresAt: pgtype.Timestamptz{Time: refreshTokenClaims.ExpiresAt.Time, Valid: true},
		})
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed refresh_token table")
	}

	logger.Info().Str("user_id", user.ID.String()).Str("refresh_token", refreshToken).Msg("successfully seeded database")
}
