package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newWindow(dayNumber int, date string) PrayerWindow {
	return PrayerWindow{
		DayNumber:  dayNumber,
		Date:       date,
		FajrEnd:    "06:30",
		DhuhrEnd:   "13:20",
		AsrEnd:     "18:10",
		MaghribEnd: "19:30",
		IshaEnd:    "20:00",
	}
}

func at(date string, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, wib)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeDayStatusScenarios(t *testing.T) {
	table := []struct {
		name         string
		window       PrayerWindow
		record       *DayRecord
		now          time.Time
		item         Item
		expectedItem ItemStatus
	}{
		{
			name:         "Fajr pending before end",
			window:       newWindow(5, "2025-03-05"),
			now:          at("2025-03-05", "06:29"),
			item:         Fajr,
			expectedItem: Pending,
		},
		{
			name:         "Fajr missed after end",
			window:       newWindow(5, "2025-03-05"),
			now:          at("2025-03-05", "06:31"),
			item:         Fajr,
			expectedItem: Missed,
		},
		{
			name:         "Fajr done late in the day",
			window:       newWindow(5, "2025-03-05"),
			record:       &DayRecord{DayNumber: 5, Fajr: true},
			now:          at("2025-03-05", "23:00"),
			item:         Fajr,
			expectedItem: Done,
		},
		{
			name:         "Fast pending before isha end",
			window:       newWindow(10, "2025-03-10"),
			now:          at("2025-03-10", "19:00"),
			item:         Fast,
			expectedItem: Pending,
		},
		{
			name:         "Fast missed after isha end",
			window:       newWindow(10, "2025-03-10"),
			now:          at("2025-03-10", "20:01"),
			item:         Fast,
			expectedItem: Missed,
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			items, err := ComputeDayStatus(v.window, v.record, v.now)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if got := items.Get(v.item); got != v.expectedItem {
				t.Fatalf("expected %s to be %s, got %s", v.item, v.expectedItem, got)
			}
		})
	}
}

func TestComputeDayStatusDonePrecedence(t *testing.T) {
	window := newWindow(1, "2025-03-01")
	record := &DayRecord{DayNumber: 1, Fajr: true, Dhuhr: true, Asr: true, Maghrib: true, Isha: true, Fast: true}

	for _, now := range []time.Time{
		at("2025-03-01", "00:00"),
		at("2025-03-01", "23:59"),
		at("2025-04-30", "12:00"),
		at("2027-01-01", "12:00"),
	} {
		items, err := ComputeDayStatus(window, record, now)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		for _, item := range Items {
			if got := items.Get(item); got != Done {
				t.Errorf("at %v expected %s to be done, got %s", now, item, got)
			}
		}
	}
}

func TestComputeDayStatusMonotonicLateness(t *testing.T) {
	window := newWindow(1, "2025-03-01")
	for _, prayer := range Prayers {
		end, err := ResolveInstant(Date{Year: 2025, Month: time.March, Day: 1}, window.EndClock(prayer), wib)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		table := []struct {
			now      time.Time
			expected ItemStatus
		}{
			{now: end.Add(-time.Hour), expected: Pending},
			{now: end, expected: Pending},
			{now: end.Add(time.Nanosecond), expected: Missed},
			{now: end.Add(48 * time.Hour), expected: Missed},
		}

		for _, v := range table {
			items, err := ComputeDayStatus(window, nil, v.now)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if got := items.Get(prayer); got != v.expected {
				t.Errorf("%s at %v: expected %s, got %s", prayer, v.now, v.expected, got)
			}
		}
	}
}

func TestComputeDayStatusFastIgnoresMaghrib(t *testing.T) {
	early := newWindow(10, "2025-03-10")
	early.MaghribEnd = "18:00"
	late := newWindow(10, "2025-03-10")
	late.MaghribEnd = "19:59"

	for _, now := range []time.Time{at("2025-03-10", "19:00"), at("2025-03-10", "20:00"), at("2025-03-10", "20:01")} {
		earlyItems, err := ComputeDayStatus(early, nil, now)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		lateItems, err := ComputeDayStatus(late, nil, now)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if earlyItems.Fast != lateItems.Fast {
			t.Errorf("at %v fast depends on maghrib end: %s vs %s", now, earlyItems.Fast, lateItems.Fast)
		}
	}
}

func TestComputeDayStatusSparseRecord(t *testing.T) {
	window := newWindow(3, "2025-03-03")
	now := at("2025-03-03", "14:00")

	withoutRecord, err := ComputeDayStatus(window, nil, now)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	withEmptyRecord, err := ComputeDayStatus(window, &DayRecord{DayNumber: 3}, now)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	if diff := cmp.Diff(withoutRecord, withEmptyRecord); diff != "" {
		t.Error(diff)
	}

	expected := DayItems{
		Prayers: PrayerStatuses{Fajr: Missed, Dhuhr: Missed, Asr: Pending, Maghrib: Pending, Isha: Pending},
		Fast:    Pending,
	}
	if diff := cmp.Diff(expected, withoutRecord); diff != "" {
		t.Error(diff)
	}
}

func TestComputeDayStatusErrors(t *testing.T) {
	badClock := newWindow(2, "2025-03-02")
	badClock.AsrEnd = "5pm"
	if _, err := ComputeDayStatus(badClock, nil, at("2025-03-02", "12:00")); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got: %v", err)
	}

	badDate := newWindow(2, "2025/03/02")
	if _, err := ComputeDayStatus(badDate, nil, at("2025-03-02", "12:00")); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got: %v", err)
	}
}

func TestParseItem(t *testing.T) {
	for _, item := range Items {
		parsed, err := ParseItem(string(item))
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if parsed != item {
			t.Fatalf("expected %s, got %s", item, parsed)
		}
	}

	if _, err := ParseItem("tahajjud"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got: %v", err)
	}
}
