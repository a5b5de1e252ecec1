package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/dbutil"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/repository"
	"github.com/rs/zerolog/log"
)

type UserServicer interface {
	GetUser(ctx context.Context, userId string) (repository.User, error)
	GetSettings(ctx context.Context, userId string) (repository.UserSetting, error)
	UpsertSettings(ctx context.Context, arg UpsertSettingsParams) (UpsertSettingsResult, error)
}

type user struct {
	configs configs.Configs
	cache   QazaCache
}

func NewUserService(configs configs.Configs, cache QazaCache) UserServicer {
	return &user{
		configs: configs,
		cache:   cache,
	}
}

func (u user) GetUser(ctx context.Context, userId string) (repository.User, error) {
	userUUID, err := parseUUID(userId)
	if err != nil {
		return repository.User{}, err
	}

	return retryutil.RetryWithData(func() (repository.User, error) {
		return u.configs.Db.Queries.SelectUserById(ctx, userUUID)
	})
}

func (u user) GetSettings(ctx context.Context, userId string) (repository.UserSetting, error) {
	userUUID, err := parseUUID(userId)
	if err != nil {
		return repository.UserSetting{}, err
	}

	setting, err := retryutil.RetryWithData(func() (repository.UserSetting, error) {
		return u.configs.Db.Queries.SelectUserSetting(ctx, userUUID)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.UserSetting{}, ErrSettingsNotFound
		}
		return repository.UserSetting{}, fmt.Errorf("failed to select user setting: %w", err)
	}

	return setting, nil
}

type UpsertSettingsParams struct {
	UserId    string
	CityName  string
	Latitude  float64
	Longitude float64
	Timezone  string
}

type UpsertSettingsResult struct {
	Setting         repository.UserSetting
	LocationChanged bool
}

// UpsertSettings stores the user's location. Prayer windows computed for a previous
// location are deleted in the same transaction so that the next sync refetches them.
func (u user) UpsertSettings(ctx context.Context, arg UpsertSettingsParams) (UpsertSettingsResult, error) {
	userUUID, err := parseUUID(arg.UserId)
	if err != nil {
		return UpsertSettingsResult{}, err
	}

	retryableFunc := func(qtx *repository.Queries) (UpsertSettingsResult, error) {
		previous, err := qtx.SelectUserSetting(ctx, userUUID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return UpsertSettingsResult{}, fmt.Errorf("failed to select user setting: %w", err)
		}

		locationChanged := errors.Is(err, pgx.ErrNoRows) ||
			previous.Latitude != arg.Latitude ||
			previous.Longitude != arg.Longitude ||
			previous.Timezone != arg.Timezone

		setting, err := qtx.UpsertUserSetting(ctx, repository.UpsertUserSettingParams{
			UserID:    userUUID,
			CityName:  arg.CityName,
			Latitude:  arg.Latitude,
			Longitude: arg.Longitude,
			Timezone:  arg.Timezone,
		})

		if err != nil {
			return UpsertSettingsResult{}, fmt.Errorf("failed to upsert user setting: %w", err)
		}

		if locationChanged {
			if _, err := qtx.DeleteUserPrayerWindows(ctx, userUUID); err != nil {
				return UpsertSettingsResult{}, fmt.Errorf("failed to delete prayer windows: %w", err)
			}
		}

		upsertSettingsResult := UpsertSettingsResult{
			Setting:         setting,
			LocationChanged: locationChanged,
		}

		return upsertSettingsResult, nil
	}

	result, err := dbutil.RetryableTxWithData(ctx, u.configs.Db.Conn, u.configs.Db.Queries, retryableFunc)
	if err != nil {
		return UpsertSettingsResult{}, err
	}

	if result.LocationChanged {
		if err := u.cache.Invalidate(ctx, arg.UserId); err != nil {
			log.Ctx(ctx).Warn().Err(err).Caller().Msg("failed to invalidate qaza cache")
		}
	}

	return result, nil
}
