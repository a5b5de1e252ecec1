package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/dtos"
	"github.com/mdayat/qaza-tracker-service/internal/httputil"
	"github.com/mdayat/qaza-tracker-service/internal/services"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type DayHandler interface {
	GetDays(res http.ResponseWriter, req *http.Request)
	GetDay(res http.ResponseWriter, req *http.Request)
	SetItem(res http.ResponseWriter, req *http.Request)
	GetQaza(res http.ResponseWriter, req *http.Request)
}

type day struct {
	configs configs.Configs
	service services.TrackerServicer
}

func NewDayHandler(configs configs.Configs, service services.TrackerServicer) DayHandler {
	return &day{
		configs: configs,
		service: service,
	}
}

// sendObservanceError maps errors of loading the observance to a status code.
func sendObservanceError(res http.ResponseWriter, logger zerolog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, services.ErrConfigNotFound), errors.Is(err, services.ErrDayNotFound):
		logger.Error().Err(err).Caller().Int("status_code", http.StatusNotFound).Send()
		http.Error(res, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, services.ErrFutureDay):
		logger.Error().Err(err).Caller().Int("status_code", http.StatusUnprocessableEntity).Send()
		http.Error(res, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
	default:
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg(msg)
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (d day) GetDays(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	now, err := observerNow(req)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid timezone")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := d.service.GetOverview(ctx, userId, now)
	if err != nil {
		sendObservanceError(res, logger, err, "failed to get overview")
		return
	}

	for _, dayErr := range result.InvalidDays {
		logger.Warn().Err(dayErr).Int("day_number", dayErr.DayNumber).Msg("skipped invalid day")
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    toOverviewResponse(result),
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got overview")
}

func (d day) GetDay(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	dayNumber, err := strconv.Atoi(chi.URLParam(req, "dayNumber"))
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid day number")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	now, err := observerNow(req)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid timezone")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	dayStatus, err := d.service.GetDay(ctx, userId, dayNumber, now)
	if err != nil {
		sendObservanceError(res, logger, err, "failed to get day")
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    toDayResponse(dayStatus),
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got day")
}

// SetItem responds with the overview computed from the toggled records. When the
// record could not be stored the response still carries an overview, rebuilt from
// the stored records, with persisted set to false.
func (d day) SetItem(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	dayNumber, err := strconv.Atoi(chi.URLParam(req, "dayNumber"))
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid day number")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var reqBody dtos.SetItemRequest
	if err := httputil.DecodeAndValidate(req, d.configs.Validate, &reqBody); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid request body")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := tracker.ParseItem(reqBody.Item)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid item")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	now, err := observerNow(req)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid timezone")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := d.service.SetItem(ctx, services.SetItemParams{
		UserId:    userId,
		DayNumber: dayNumber,
		Item:      item,
		Done:      *reqBody.Done,
		Now:       now,
	})

	statusCode := http.StatusOK
	if err != nil {
		if !errors.Is(err, services.ErrRecordNotPersisted) || len(result.Overview.Days) == 0 {
			sendObservanceError(res, logger, err, "failed to set item")
			return
		}

		statusCode = http.StatusInternalServerError
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to persist day record")
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: statusCode,
		ResBody: dtos.SetItemResponse{
			Persisted: err == nil,
			Overview:  toOverviewResponse(result),
		},
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if statusCode == http.StatusOK {
		logger.Info().Int("status_code", statusCode).Str("item", string(item)).Bool("done", *reqBody.Done).Msg("successfully set item")
	}
}

func (d day) GetQaza(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()
	userId := ctx.Value(userIdKey{}).(string)

	now, err := observerNow(req)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid timezone")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	summary, err := d.service.GetQaza(ctx, userId, now)
	if err != nil {
		sendObservanceError(res, logger, err, "failed to get qaza summary")
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    toQazaResponse(summary),
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got qaza summary")
}
