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

type ConfigHandler interface {
	GetConfig(res http.ResponseWriter, req *http.Request)
}

type config struct {
	configs configs.Configs
	service services.ConfigServicer
}

func NewConfigHandler(configs configs.Configs, service services.ConfigServicer) ConfigHandler {
	return &config{
		configs: configs,
		service: service,
	}
}

func (c config) GetConfig(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	ramadanConfig, err := c.service.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusNotFound).Send()
			http.Error(res, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		} else {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to get ramadan config")
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody: dtos.ConfigResponse{
			TotalDays: int(ramadanConfig.TotalDays),
			StartDate: ramadanConfig.StartDate.Time.Format("2006-01-02"),
		},
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got ramadan config")
}
