package aladhan

import (
	"fmt"
	"strings"

	"github.com/mdayat/qaza-tracker-service/internal/tracker"
)

const (
	dhuhrWindow   = 80
	maghribWindow = 80
	ishaWindow    = 90

	lastMinuteOfDay = 23*60 + 59
)

// PrayerEnds holds the derived end of each prayer's completion window.
type PrayerEnds struct {
	FajrEnd    string
	DhuhrEnd   string
	AsrEnd     string
	MaghribEnd string
	IshaEnd    string
}

// cleanTime strips the timezone suffix: "04:32 (WIB)" becomes "04:32".
func cleanTime(s string) string {
	s = strings.TrimSpace(s)
	if before, _, found := strings.Cut(s, " "); found {
		return before
	}
	return s
}

// addMinutes shifts clock forward and clamps at 23:59 so that the result
// stays on the same calendar day.
func addMinutes(clock string, minutes int) (string, error) {
	hour, minute, err := tracker.ParseClock(clock)
	if err != nil {
		return "", err
	}

	total := min(hour*60+minute+minutes, lastMinuteOfDay)
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

func normalize(clock string) (string, error) {
	return addMinutes(clock, 0)
}

// PrayerEnds derives window ends: Fajr ends at sunrise, Asr ends at Maghrib,
// Dhuhr and Maghrib last 80 minutes and Isha lasts 90 minutes.
func (t Timings) PrayerEnds() (PrayerEnds, error) {
	fajrEnd, err := normalize(cleanTime(t.Sunrise))
	if err != nil {
		return PrayerEnds{}, fmt.Errorf("failed to parse sunrise: %w", err)
	}

	dhuhrEnd, err := addMinutes(cleanTime(t.Dhuhr), dhuhrWindow)
	if err != nil {
		return PrayerEnds{}, fmt.Errorf("failed to parse dhuhr: %w", err)
	}

	asrEnd, err := normalize(cleanTime(t.Maghrib))
	if err != nil {
		return PrayerEnds{}, fmt.Errorf("failed to parse maghrib: %w", err)
	}

	maghribEnd, err := addMinutes(cleanTime(t.Maghrib), maghribWindow)
	if err != nil {
		return PrayerEnds{}, fmt.Errorf("failed to parse maghrib: %w", err)
	}

	ishaEnd, err := addMinutes(cleanTime(t.Isha), ishaWindow)
	if err != nil {
		return PrayerEnds{}, fmt.Errorf("failed to parse isha: %w", err)
	}

	prayerEnds := PrayerEnds{
		FajrEnd:    fajrEnd,
		DhuhrEnd:   dhuhrEnd,
		AsrEnd:     asrEnd,
		MaghribEnd: maghribEnd,
		IshaEnd:    ishaEnd,
	}

	return prayerEnds, nil
}
