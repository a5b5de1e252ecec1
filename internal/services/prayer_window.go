package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/aladhan"
	"github.com/mdayat/qaza-tracker-service/internal/dbutil"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
	"github.com/mdayat/qaza-tracker-service/repository"
	"github.com/rs/zerolog/log"
)

type PrayerWindowServicer interface {
	GetPrayerWindows(ctx context.Context, userId string) ([]tracker.PrayerWindow, error)
	SyncPrayerWindows(ctx context.Context, userId string) (SyncPrayerWindowsResult, error)
}

type prayerWindow struct {
	configs configs.Configs
	aladhan aladhan.Client
	cache   QazaCache
}

func NewPrayerWindowService(configs configs.Configs, aladhanClient aladhan.Client, cache QazaCache) PrayerWindowServicer {
	return &prayerWindow{
		configs: configs,
		aladhan: aladhanClient,
		cache:   cache,
	}
}

func (p prayerWindow) selectWindows(ctx context.Context, userId pgtype.UUID) ([]repository.PrayerWindow, error) {
	windows, err := retryutil.RetryWithData(func() ([]repository.PrayerWindow, error) {
		return p.configs.Db.Queries.SelectUserPrayerWindows(ctx, userId)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to select prayer windows: %w", err)
	}

	return windows, nil
}

func (p prayerWindow) GetPrayerWindows(ctx context.Context, userId string) ([]tracker.PrayerWindow, error) {
	userUUID, err := parseUUID(userId)
	if err != nil {
		return nil, err
	}

	windows, err := p.selectWindows(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return toTrackerWindows(windows), nil
}

type SyncPrayerWindowsResult struct {
	Windows []tracker.PrayerWindow
	Fetched int
	Failed  int
}

// expectedDates numbers the observance days from startDate: day N falls on
// startDate + N-1.
func expectedDates(startDate tracker.Date, totalDays int) map[int]tracker.Date {
	dates := make(map[int]tracker.Date, totalDays)
	for i := 0; i < totalDays; i++ {
		dates[i+1] = startDate.AddDays(i)
	}
	return dates
}

// isStale reports whether stored windows were numbered from another start date.
func isStale(windows []repository.PrayerWindow, dates map[int]tracker.Date) bool {
	for _, window := range windows {
		expected, ok := dates[int(window.DayNumber)]
		if !ok {
			continue
		}

		if dateString(window.Date) != expected.String() {
			return true
		}
	}
	return false
}

// SyncPrayerWindows fetches the windows of every observance day that has none stored
// yet. A day whose fetch fails is logged and skipped so that the next sync retries it.
func (p prayerWindow) SyncPrayerWindows(ctx context.Context, userId string) (SyncPrayerWindowsResult, error) {
	logger := log.Ctx(ctx).With().Logger()

	userUUID, err := parseUUID(userId)
	if err != nil {
		return SyncPrayerWindowsResult{}, err
	}

	setting, err := retryutil.RetryWithData(func() (repository.UserSetting, error) {
		return p.configs.Db.Queries.SelectUserSetting(ctx, userUUID)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SyncPrayerWindowsResult{}, ErrSettingsNotFound
		}
		return SyncPrayerWindowsResult{}, fmt.Errorf("failed to select user setting: %w", err)
	}

	config, err := retryutil.RetryWithData(func() (repository.RamadanConfig, error) {
		return p.configs.Db.Queries.SelectRamadanConfig(ctx)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SyncPrayerWindowsResult{}, ErrConfigNotFound
		}
		return SyncPrayerWindowsResult{}, fmt.Errorf("failed to select ramadan config: %w", err)
	}

	existing, err := p.selectWindows(ctx, userUUID)
	if err != nil {
		return SyncPrayerWindowsResult{}, err
	}

	dates := expectedDates(tracker.DateOf(config.StartDate.Time), int(config.TotalDays))
	purged := isStale(existing, dates)
	if purged {
		err := dbutil.RetryableTxWithoutData(ctx, p.configs.Db.Conn, p.configs.Db.Queries, func(qtx *repository.Queries) error {
			_, err := qtx.DeleteUserPrayerWindows(ctx, userUUID)
			return err
		})

		if err != nil {
			return SyncPrayerWindowsResult{}, fmt.Errorf("failed to delete stale prayer windows: %w", err)
		}

		logger.Info().Int("deleted", len(existing)).Msg("deleted prayer windows of a previous start date")
		existing = nil
	}

	stored := make(map[string]bool, len(existing))
	for _, window := range existing {
		stored[dateString(window.Date)] = true
	}

	location := aladhan.Location{
		Latitude:  setting.Latitude,
		Longitude: setting.Longitude,
		Timezone:  setting.Timezone,
	}

	var result SyncPrayerWindowsResult
	for dayNumber := 1; dayNumber <= int(config.TotalDays); dayNumber++ {
		date := dates[dayNumber]
		if stored[date.String()] {
			continue
		}

		if err := p.syncDay(ctx, userUUID, dayNumber, date, location); err != nil {
			if ctx.Err() != nil {
				return SyncPrayerWindowsResult{}, ctx.Err()
			}

			logger.Warn().Err(err).Caller().Str("date", date.String()).Msg("failed to sync prayer window")
			result.Failed++
			continue
		}

		result.Fetched++
	}

	// Cached summaries were computed against the windows replaced above.
	if purged || result.Fetched > 0 {
		if err := p.cache.Invalidate(ctx, userId); err != nil {
			logger.Warn().Err(err).Caller().Msg("failed to invalidate qaza cache")
		}
	}

	windows, err := p.selectWindows(ctx, userUUID)
	if err != nil {
		return SyncPrayerWindowsResult{}, err
	}

	result.Windows = toTrackerWindows(windows)
	return result, nil
}

func (p prayerWindow) syncDay(ctx context.Context, userId pgtype.UUID, dayNumber int, date tracker.Date, location aladhan.Location) error {
	timings, err := p.aladhan.Timings(ctx, date, location)
	if err != nil {
		return fmt.Errorf("failed to fetch timings: %w", err)
	}

	prayerEnds, err := timings.PrayerEnds()
	if err != nil {
		return fmt.Errorf("failed to derive prayer ends: %w", err)
	}

	_, err = retryutil.RetryWithData(func() (repository.PrayerWindow, error) {
		return p.configs.Db.Queries.UpsertUserPrayerWindow(ctx, repository.UpsertUserPrayerWindowParams{
			ID:         newUUID(),
			UserID:     userId,
			DayNumber:  int16(dayNumber),
			Date:       toPgDate(date),
			FajrEnd:    prayerEnds.FajrEnd,
			DhuhrEnd:   prayerEnds.DhuhrEnd,
			AsrEnd:     prayerEnds.AsrEnd,
			MaghribEnd: prayerEnds.MaghribEnd,
			IshaEnd:    prayerEnds.IshaEnd,
		})
	})

	if err != nil {
		return fmt.Errorf("failed to upsert prayer window: %w", err)
	}

	return nil
}
