package tracker

import (
	"errors"
	"sort"
	"time"
)

type DayStatus struct {
	DayNumber int            `json:"day_number"`
	Date      string         `json:"date"`
	Prayers   PrayerStatuses `json:"prayers"`
	Fast      ItemStatus     `json:"fast"`
	IsToday   bool           `json:"is_today"`
	IsPast    bool           `json:"is_past"`
	IsFuture  bool           `json:"is_future"`
}

func (d DayStatus) Items() DayItems {
	return DayItems{Prayers: d.Prayers, Fast: d.Fast}
}

// BuildDayStatus assembles the full status of one day. The temporal flags compare the
// window's date with now's calendar date in now's location.
func BuildDayStatus(dayNumber int, window PrayerWindow, record *DayRecord, now time.Time) (DayStatus, error) {
	date, err := ParseDate(window.Date)
	if err != nil {
		return DayStatus{}, err
	}

	items, err := classifyDay(date, window, record, now)
	if err != nil {
		return DayStatus{}, err
	}

	cmp := date.Compare(DateOf(now))
	return DayStatus{
		DayNumber: dayNumber,
		Date:      date.String(),
		Prayers:   items.Prayers,
		Fast:      items.Fast,
		IsToday:   cmp == 0,
		IsPast:    cmp < 0,
		IsFuture:  cmp > 0,
	}, nil
}

// BuildDayStatuses assembles the statuses of the active days 1..totalDays, ordered by
// day number. Windows outside that range are ignored and records are matched by day
// number. Days that cannot be classified are left out and reported as *DayError values
// joined into the returned error; the statuses of every other day are still returned.
func BuildDayStatuses(windows []PrayerWindow, records []DayRecord, totalDays int, now time.Time) ([]DayStatus, error) {
	active := make([]PrayerWindow, 0, len(windows))
	for _, window := range windows {
		if window.DayNumber >= 1 && window.DayNumber <= totalDays {
			active = append(active, window)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DayNumber < active[j].DayNumber
	})

	recordByDay := make(map[int]DayRecord, len(records))
	for _, record := range records {
		recordByDay[record.DayNumber] = record
	}

	statuses := make([]DayStatus, 0, len(active))
	var errs []error
	for _, window := range active {
		var record *DayRecord
		if r, ok := recordByDay[window.DayNumber]; ok {
			record = &r
		}

		status, err := BuildDayStatus(window.DayNumber, window, record, now)
		if err != nil {
			errs = append(errs, &DayError{DayNumber: window.DayNumber, Err: err})
			continue
		}

		statuses = append(statuses, status)
	}

	return statuses, errors.Join(errs...)
}
