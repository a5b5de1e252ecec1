package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
	"github.com/mdayat/qaza-tracker-service/repository"
)

func parseUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("failed to parse %q to UUID: %w", id, err)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func newUUID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func dateString(date pgtype.Date) string {
	return tracker.DateOf(date.Time).String()
}

func toPgDate(date tracker.Date) pgtype.Date {
	return pgtype.Date{Time: time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func toTrackerWindow(window repository.PrayerWindow) tracker.PrayerWindow {
	return tracker.PrayerWindow{
		DayNumber:  int(window.DayNumber),
		Date:       dateString(window.Date),
		FajrEnd:    window.FajrEnd,
		DhuhrEnd:   window.DhuhrEnd,
		AsrEnd:     window.AsrEnd,
		MaghribEnd: window.MaghribEnd,
		IshaEnd:    window.IshaEnd,
	}
}

func toTrackerWindows(windows []repository.PrayerWindow) []tracker.PrayerWindow {
	result := make([]tracker.PrayerWindow, 0, len(windows))
	for _, window := range windows {
		result = append(result, toTrackerWindow(window))
	}
	return result
}

func toTrackerRecords(records []repository.DayRecord) []tracker.DayRecord {
	result := make([]tracker.DayRecord, 0, len(records))
	for _, record := range records {
		result = append(result, tracker.DayRecord{
			DayNumber: int(record.DayNumber),
			Date:      dateString(record.Date),
			Fajr:      record.Fajr,
			Dhuhr:     record.Dhuhr,
			Asr:       record.Asr,
			Maghrib:   record.Maghrib,
			Isha:      record.Isha,
			Fast:      record.Fast,
			UpdatedAt: record.UpdatedAt.Time,
		})
	}
	return result
}
