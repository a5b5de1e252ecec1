package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/dtos"
	"github.com/mdayat/qaza-tracker-service/internal/httputil"
	"github.com/mdayat/qaza-tracker-service/internal/services"
	"github.com/rs/zerolog/log"
)

type UserHandler interface {
	GetMe(res http.ResponseWriter, req *http.Request)
	GetSettings(res http.ResponseWriter, req *http.Request)
	UpdateSettings(res http.ResponseWriter, req *http.Request)
}

type user struct {
	configs             configs.Configs
	service             services.UserServicer
	prayerWindowService services.PrayerWindowServicer
}

func NewUserHandler(configs configs.Configs, service services.UserServicer, prayerWindowService services.PrayerWindowServicer) UserHandler {
	return &user{
		configs:             configs,
		service:             service,
		prayerWindowService: prayerWindowService,
	}
}

func (u user) GetMe(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	user, err := u.service.GetUser(ctx, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusNotFound).Msg("user not found")
			http.Error(res, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		} else {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to get user")
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    toUserResponse(user),
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got me")
}

func (u user) GetSettings(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	setting, err := u.service.GetSettings(ctx, userId)
	if err != nil {
		if errors.Is(err, services.ErrSettingsNotFound) {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusNotFound).Send()
			http.Error(res, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		} else {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to get settings")
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    toSettingsResponse(setting),
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got settings")
}

// UpdateSettings stores the user's location and refetches the prayer windows when
// the location moved. A failed sync does not fail the request.
func (u user) UpdateSettings(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	var reqBody dtos.SettingsRequest
	if err := httputil.DecodeAndValidate(req, u.configs.Validate, &reqBody); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid request body")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := u.service.UpsertSettings(ctx, services.UpsertSettingsParams{
		UserId:    userId,
		CityName:  reqBody.CityName,
		Latitude:  reqBody.Latitude,
		Longitude: reqBody.Longitude,
		Timezone:  reqBody.Timezone,
	})

	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to upsert settings")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resBody := dtos.UpdateSettingsResponse{
		Settings:        toSettingsResponse(result.Setting),
		LocationChanged: result.LocationChanged,
	}

	if result.LocationChanged {
		syncResult, err := u.prayerWindowService.SyncPrayerWindows(ctx, userId)
		if err != nil {
			logger.Warn().Err(err).Caller().Msg("failed to sync prayer windows after location change")
		} else {
			resBody.SyncedDays = syncResult.Fetched
			resBody.FailedSyncedDays = syncResult.Failed
		}
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully updated settings")
}
