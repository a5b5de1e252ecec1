package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
	"github.com/mdayat/qaza-tracker-service/repository"
	"github.com/rs/zerolog/log"
)

type TrackerServicer interface {
	GetOverview(ctx context.Context, userId string, now time.Time) (OverviewResult, error)
	GetDay(ctx context.Context, userId string, dayNumber int, now time.Time) (tracker.DayStatus, error)
	SetItem(ctx context.Context, arg SetItemParams) (OverviewResult, error)
	GetQaza(ctx context.Context, userId string, now time.Time) (tracker.QazaSummary, error)
}

type trackerService struct {
	configs configs.Configs
	cache   QazaCache
}

func NewTrackerService(configs configs.Configs, cache QazaCache) TrackerServicer {
	return &trackerService{
		configs: configs,
		cache:   cache,
	}
}

// OverviewResult is an overview together with the days that could not be classified.
type OverviewResult struct {
	Overview    tracker.Overview
	InvalidDays []*tracker.DayError
}

func newOverviewResult(overview tracker.Overview, err error) (OverviewResult, error) {
	invalidDays := tracker.DayErrors(err)
	if err != nil && len(invalidDays) == 0 {
		return OverviewResult{}, fmt.Errorf("failed to build overview: %w", err)
	}

	return OverviewResult{Overview: overview, InvalidDays: invalidDays}, nil
}

type observance struct {
	totalDays int
	windows   []repository.PrayerWindow
	records   []repository.DayRecord
}

func (o observance) build(now time.Time) (tracker.Overview, error) {
	return tracker.BuildOverview(toTrackerWindows(o.windows), toTrackerRecords(o.records), o.totalDays, now)
}

func (t trackerService) selectRecords(ctx context.Context, userId string) ([]repository.DayRecord, error) {
	userUUID, err := parseUUID(userId)
	if err != nil {
		return nil, err
	}

	records, err := retryutil.RetryWithData(func() ([]repository.DayRecord, error) {
		return t.configs.Db.Queries.SelectUserDayRecords(ctx, userUUID)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to select day records: %w", err)
	}

	return records, nil
}

func (t trackerService) loadObservance(ctx context.Context, userId string) (observance, error) {
	userUUID, err := parseUUID(userId)
	if err != nil {
		return observance{}, err
	}

	config, err := retryutil.RetryWithData(func() (repository.RamadanConfig, error) {
		return t.configs.Db.Queries.SelectRamadanConfig(ctx)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return observance{}, ErrConfigNotFound
		}
		return observance{}, fmt.Errorf("failed to select ramadan config: %w", err)
	}

	windows, err := retryutil.RetryWithData(func() ([]repository.PrayerWindow, error) {
		return t.configs.Db.Queries.SelectUserPrayerWindows(ctx, userUUID)
	})

	if err != nil {
		return observance{}, fmt.Errorf("failed to select prayer windows: %w", err)
	}

	records, err := t.selectRecords(ctx, userId)
	if err != nil {
		return observance{}, err
	}

	observance := observance{
		totalDays: int(config.TotalDays),
		windows:   windows,
		records:   records,
	}

	return observance, nil
}

func (t trackerService) GetOverview(ctx context.Context, userId string, now time.Time) (OverviewResult, error) {
	observance, err := t.loadObservance(ctx, userId)
	if err != nil {
		return OverviewResult{}, err
	}

	return newOverviewResult(observance.build(now))
}

func (t trackerService) GetDay(ctx context.Context, userId string, dayNumber int, now time.Time) (tracker.DayStatus, error) {
	result, err := t.GetOverview(ctx, userId, now)
	if err != nil {
		return tracker.DayStatus{}, err
	}

	if day, ok := result.Overview.Day(dayNumber); ok {
		return day, nil
	}

	for _, dayErr := range result.InvalidDays {
		if dayErr.DayNumber == dayNumber {
			return tracker.DayStatus{}, dayErr
		}
	}

	return tracker.DayStatus{}, ErrDayNotFound
}

type SetItemParams struct {
	UserId    string
	DayNumber int
	Item      tracker.Item
	Done      bool
	Now       time.Time
}

// SetItem marks or unmarks one item of a day. The overview is computed from the
// toggled record set before the write; when the write fails the authoritative record
// set is reloaded and its overview is returned alongside ErrRecordNotPersisted.
func (t trackerService) SetItem(ctx context.Context, arg SetItemParams) (OverviewResult, error) {
	observance, err := t.loadObservance(ctx, arg.UserId)
	if err != nil {
		return OverviewResult{}, err
	}

	var window *repository.PrayerWindow
	for i := range observance.windows {
		if int(observance.windows[i].DayNumber) == arg.DayNumber {
			window = &observance.windows[i]
			break
		}
	}

	if window == nil || arg.DayNumber < 1 || arg.DayNumber > observance.totalDays {
		return OverviewResult{}, ErrDayNotFound
	}

	date, err := tracker.ParseDate(dateString(window.Date))
	if err != nil {
		return OverviewResult{}, err
	}

	if date.Compare(tracker.DateOf(arg.Now)) > 0 {
		return OverviewResult{}, ErrFutureDay
	}

	records := toTrackerRecords(observance.records)
	toggled := tracker.ApplyToggle(records, arg.DayNumber, date.String(), arg.Item, arg.Done, arg.Now)

	upsertParams := repository.UpsertUserDayRecordParams{
		ID:        newUUID(),
		UserID:    window.UserID,
		DayNumber: int16(arg.DayNumber),
		Date:      window.Date,
	}
	setItemParam(&upsertParams, arg.Item, arg.Done)

	stored, err := retryutil.RetryWithData(func() (repository.DayRecord, error) {
		return t.configs.Db.Queries.UpsertUserDayRecord(ctx, upsertParams)
	})

	if err != nil {
		persistErr := fmt.Errorf("%w: %w", ErrRecordNotPersisted, err)

		authoritative, selectErr := t.selectRecords(ctx, arg.UserId)
		if selectErr != nil {
			return OverviewResult{}, errors.Join(persistErr, selectErr)
		}

		observance.records = authoritative
		result, resultErr := newOverviewResult(observance.build(arg.Now))
		if resultErr != nil {
			return OverviewResult{}, errors.Join(persistErr, resultErr)
		}

		return result, persistErr
	}

	if err := t.cache.Invalidate(ctx, arg.UserId); err != nil {
		log.Ctx(ctx).Warn().Err(err).Caller().Msg("failed to invalidate qaza cache")
	}

	// The stored row also carries marks written by concurrent requests since the
	// records were loaded.
	toggled = tracker.MergeRecord(toggled, toTrackerRecords([]repository.DayRecord{stored})[0])
	return newOverviewResult(tracker.BuildOverview(toTrackerWindows(observance.windows), toggled, observance.totalDays, arg.Now))
}

// setItemParam sets the one flag a toggle writes. The other flags stay NULL so the
// upsert keeps their stored values.
func setItemParam(params *repository.UpsertUserDayRecordParams, item tracker.Item, done bool) {
	value := pgtype.Bool{Bool: done, Valid: true}
	switch item {
	case tracker.Fajr:
		params.Fajr = value
	case tracker.Dhuhr:
		params.Dhuhr = value
	case tracker.Asr:
		params.Asr = value
	case tracker.Maghrib:
		params.Maghrib = value
	case tracker.Isha:
		params.Isha = value
	case tracker.Fast:
		params.Fast = value
	}
}

// GetQaza serves the summary from the cache when a fresh one exists for now's
// timezone, and recomputes it otherwise.
func (t trackerService) GetQaza(ctx context.Context, userId string, now time.Time) (tracker.QazaSummary, error) {
	logger := log.Ctx(ctx).With().Logger()
	zone := now.Location().String()

	summary, found, err := t.cache.Get(ctx, userId, zone)
	if err != nil {
		logger.Warn().Err(err).Caller().Msg("failed to read qaza cache")
	}

	if found {
		return summary, nil
	}

	result, err := t.GetOverview(ctx, userId, now)
	if err != nil {
		return tracker.QazaSummary{}, err
	}

	if err := t.cache.Set(ctx, userId, zone, result.Overview.Qaza); err != nil {
		logger.Warn().Err(err).Caller().Msg("failed to write qaza cache")
	}

	return result.Overview.Qaza, nil
}
