package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBuildDayStatusTemporalFlags(t *testing.T) {
	now := at("2025-03-05", "10:00")
	table := []struct {
		name     string
		date     string
		isToday  bool
		isPast   bool
		isFuture bool
	}{
		{name: "Today", date: "2025-03-05", isToday: true},
		{name: "Yesterday", date: "2025-03-04", isPast: true},
		{name: "Tomorrow", date: "2025-03-06", isFuture: true},
		{name: "Previous year", date: "2024-12-31", isPast: true},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			day, err := BuildDayStatus(1, newWindow(1, v.date), nil, now)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if day.IsToday != v.isToday || day.IsPast != v.isPast || day.IsFuture != v.isFuture {
				t.Fatalf("expected today=%t past=%t future=%t, got today=%t past=%t future=%t",
					v.isToday, v.isPast, v.isFuture, day.IsToday, day.IsPast, day.IsFuture)
			}
		})
	}
}

func TestBuildDayStatusUsesLocalDate(t *testing.T) {
	// 01:00 on March 6th in WIB is still March 5th in UTC.
	now := time.Date(2025, time.March, 6, 1, 0, 0, 0, wib)

	day, err := BuildDayStatus(6, newWindow(6, "2025-03-06"), nil, now)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	if !day.IsToday {
		t.Fatalf("expected day to be today in the observer's location, got %+v", day)
	}

	expected := DayStatus{
		DayNumber: 6,
		Date:      "2025-03-06",
		Prayers:   PrayerStatuses{Fajr: Pending, Dhuhr: Pending, Asr: Pending, Maghrib: Pending, Isha: Pending},
		Fast:      Pending,
		IsToday:   true,
	}
	if diff := cmp.Diff(expected, day); diff != "" {
		t.Error(diff)
	}
}

func TestBuildDayStatusInvalidDate(t *testing.T) {
	_, err := BuildDayStatus(1, newWindow(1, "not-a-date"), nil, at("2025-03-05", "10:00"))
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got: %v", err)
	}
}

func TestBuildDayStatusMatchesComputeDayStatus(t *testing.T) {
	window := newWindow(3, "2025-03-03")
	record := &DayRecord{DayNumber: 3, Fajr: true, Isha: true}

	for _, now := range []time.Time{at("2025-03-03", "14:00"), at("2025-03-04", "10:00")} {
		items, err := ComputeDayStatus(window, record, now)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		day, err := BuildDayStatus(3, window, record, now)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if diff := cmp.Diff(items, DayItems{Prayers: day.Prayers, Fast: day.Fast}); diff != "" {
			t.Errorf("at %s: %s", now, diff)
		}
	}
}

func TestBuildDayStatusInvalidClock(t *testing.T) {
	window := newWindow(2, "2025-03-02")
	window.MaghribEnd = "7pm"

	_, err := BuildDayStatus(2, window, nil, at("2025-03-02", "12:00"))
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got: %v", err)
	}
}

func TestBuildDayStatuses(t *testing.T) {
	now := at("2025-03-02", "12:00")
	broken := newWindow(3, "2025-03-03")
	broken.IshaEnd = "25:00"

	windows := []PrayerWindow{
		newWindow(2, "2025-03-02"),
		newWindow(1, "2025-03-01"),
		broken,
		newWindow(4, "2025-03-04"),
		newWindow(31, "2025-03-31"),
	}
	records := []DayRecord{
		{DayNumber: 1, Fajr: true, Dhuhr: true, Asr: true, Maghrib: true, Isha: true, Fast: true},
		{DayNumber: 30, Fajr: true},
	}

	days, err := BuildDayStatuses(windows, records, 30, now)
	if err == nil {
		t.Fatal("expected an error for the broken day")
	}

	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got: %v", err)
	}

	dayErrors := DayErrors(err)
	if len(dayErrors) != 1 || dayErrors[0].DayNumber != 3 {
		t.Fatalf("expected a single error for day 3, got %v", dayErrors)
	}

	dayNumbers := make([]int, 0, len(days))
	for _, day := range days {
		dayNumbers = append(dayNumbers, day.DayNumber)
	}

	if diff := cmp.Diff([]int{1, 2, 4}, dayNumbers); diff != "" {
		t.Fatal(diff)
	}

	if days[0].Fast != Done || !days[0].IsPast {
		t.Errorf("expected day 1 to be past and done, got %+v", days[0])
	}

	if !days[1].IsToday || days[1].Prayers.Fajr != Missed || days[1].Prayers.Asr != Pending {
		t.Errorf("unexpected day 2 status: %+v", days[1])
	}

	if !days[2].IsFuture {
		t.Errorf("expected day 4 to be in the future, got %+v", days[2])
	}
}

func TestBuildDayStatusesBoundedByTotalDays(t *testing.T) {
	windows := make([]PrayerWindow, 0, 30)
	start := Date{Year: 2025, Month: time.March, Day: 1}
	for i := 0; i < 30; i++ {
		windows = append(windows, newWindow(i+1, start.AddDays(i).String()))
	}

	days, err := BuildDayStatuses(windows, nil, 29, at("2025-03-15", "12:00"))
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	if len(days) != 29 {
		t.Fatalf("expected 29 days, got %d", len(days))
	}

	if last := days[len(days)-1]; last.DayNumber != 29 || last.Date != "2025-03-29" {
		t.Fatalf("unexpected last day: %+v", last)
	}
}

func TestBuildDayStatusesIsRepeatable(t *testing.T) {
	windows := []PrayerWindow{newWindow(1, "2025-03-01"), newWindow(2, "2025-03-02")}
	records := []DayRecord{{DayNumber: 2, Asr: true}}
	now := at("2025-03-02", "19:45")

	first, err := BuildDayStatuses(windows, records, 30, now)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	second, err := BuildDayStatuses(windows, records, 30, now)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Error(diff)
	}
}
