package handlers

import (
	"errors"
	"net/http"

	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/dtos"
	"github.com/mdayat/qaza-tracker-service/internal/httputil"
	"github.com/mdayat/qaza-tracker-service/internal/services"
	"github.com/rs/zerolog/log"
)

type PrayerWindowHandler interface {
	GetPrayerWindows(res http.ResponseWriter, req *http.Request)
	SyncPrayerWindows(res http.ResponseWriter, req *http.Request)
}

type prayerWindow struct {
	configs configs.Configs
	service services.PrayerWindowServicer
}

func NewPrayerWindowHandler(configs configs.Configs, service services.PrayerWindowServicer) PrayerWindowHandler {
	return &prayerWindow{
		configs: configs,
		service: service,
	}
}

func (p prayerWindow) GetPrayerWindows(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	windows, err := p.service.GetPrayerWindows(ctx, userId)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to get prayer windows")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    toPrayerWindowResponses(windows),
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got prayer windows")
}

func (p prayerWindow) SyncPrayerWindows(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	result, err := p.service.SyncPrayerWindows(ctx, userId)
	if err != nil {
		if errors.Is(err, services.ErrSettingsNotFound) || errors.Is(err, services.ErrConfigNotFound) {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusNotFound).Msg("nothing to sync prayer windows against")
			http.Error(res, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		} else {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to sync prayer windows")
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody: dtos.SyncPrayerWindowsResponse{
			Fetched: result.Fetched,
			Failed:  result.Failed,
			Windows: toPrayerWindowResponses(result.Windows),
		},
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Int("fetched", result.Fetched).Int("failed", result.Failed).Msg("successfully synced prayer windows")
}
