package tracker

import (
	"fmt"
	"time"
)

type Item string

const (
	Fajr    Item = "fajr"
	Dhuhr   Item = "dhuhr"
	Asr     Item = "asr"
	Maghrib Item = "maghrib"
	Isha    Item = "isha"
	Fast    Item = "fast"
)

// Prayers lists the five daily prayers in the order they occur.
var Prayers = [5]Item{Fajr, Dhuhr, Asr, Maghrib, Isha}

// Items lists every trackable item: the five prayers followed by the fast.
var Items = [6]Item{Fajr, Dhuhr, Asr, Maghrib, Isha, Fast}

func ParseItem(s string) (Item, error) {
	for _, item := range Items {
		if string(item) == s {
			return item, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItem, s)
}

type ItemStatus string

const (
	Done    ItemStatus = "done"
	Missed  ItemStatus = "missed"
	Pending ItemStatus = "pending"
)

// PrayerWindow holds the end of the valid-completion window of each prayer for one day,
// as "HH:MM" wall-clock strings local to the day's location.
type PrayerWindow struct {
	DayNumber  int    `json:"day_number"`
	Date       string `json:"date"`
	FajrEnd    string `json:"fajr_end"`
	DhuhrEnd   string `json:"dhuhr_end"`
	AsrEnd     string `json:"asr_end"`
	MaghribEnd string `json:"maghrib_end"`
	IshaEnd    string `json:"isha_end"`
}

func (w PrayerWindow) EndClock(prayer Item) string {
	switch prayer {
	case Fajr:
		return w.FajrEnd
	case Dhuhr:
		return w.DhuhrEnd
	case Asr:
		return w.AsrEnd
	case Maghrib:
		return w.MaghribEnd
	case Isha, Fast:
		return w.IshaEnd
	default:
		return ""
	}
}

// DayRecord is what the user affirmatively marked complete on one day.
type DayRecord struct {
	DayNumber int       `json:"day_number"`
	Date      string    `json:"date"`
	Fajr      bool      `json:"fajr"`
	Dhuhr     bool      `json:"dhuhr"`
	Asr       bool      `json:"asr"`
	Maghrib   bool      `json:"maghrib"`
	Isha      bool      `json:"isha"`
	Fast      bool      `json:"fast"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Done reports whether item was marked. A nil record has nothing marked.
func (r *DayRecord) Done(item Item) bool {
	if r == nil {
		return false
	}

	switch item {
	case Fajr:
		return r.Fajr
	case Dhuhr:
		return r.Dhuhr
	case Asr:
		return r.Asr
	case Maghrib:
		return r.Maghrib
	case Isha:
		return r.Isha
	case Fast:
		return r.Fast
	default:
		return false
	}
}

func (r *DayRecord) set(item Item, done bool) {
	switch item {
	case Fajr:
		r.Fajr = done
	case Dhuhr:
		r.Dhuhr = done
	case Asr:
		r.Asr = done
	case Maghrib:
		r.Maghrib = done
	case Isha:
		r.Isha = done
	case Fast:
		r.Fast = done
	}
}

type PrayerStatuses struct {
	Fajr    ItemStatus `json:"fajr"`
	Dhuhr   ItemStatus `json:"dhuhr"`
	Asr     ItemStatus `json:"asr"`
	Maghrib ItemStatus `json:"maghrib"`
	Isha    ItemStatus `json:"isha"`
}

func (p PrayerStatuses) Get(prayer Item) ItemStatus {
	switch prayer {
	case Fajr:
		return p.Fajr
	case Dhuhr:
		return p.Dhuhr
	case Asr:
		return p.Asr
	case Maghrib:
		return p.Maghrib
	case Isha:
		return p.Isha
	default:
		return ""
	}
}

func (p *PrayerStatuses) set(prayer Item, status ItemStatus) {
	switch prayer {
	case Fajr:
		p.Fajr = status
	case Dhuhr:
		p.Dhuhr = status
	case Asr:
		p.Asr = status
	case Maghrib:
		p.Maghrib = status
	case Isha:
		p.Isha = status
	}
}

// DayItems is the classification of every item of one day.
type DayItems struct {
	Prayers PrayerStatuses `json:"prayers"`
	Fast    ItemStatus     `json:"fast"`
}

func (d DayItems) Get(item Item) ItemStatus {
	if item == Fast {
		return d.Fast
	}
	return d.Prayers.Get(item)
}

func classify(done bool, end, now time.Time) ItemStatus {
	switch {
	case done:
		return Done
	case now.After(end):
		return Missed
	default:
		return Pending
	}
}

// ComputeDayStatus classifies the five prayers and the fast of one day. End times are
// resolved in now's location. The fast is settled against the Isha end time.
func ComputeDayStatus(window PrayerWindow, record *DayRecord, now time.Time) (DayItems, error) {
	date, err := ParseDate(window.Date)
	if err != nil {
		return DayItems{}, err
	}

	return classifyDay(date, window, record, now)
}

// classifyDay takes the already parsed window date.
func classifyDay(date Date, window PrayerWindow, record *DayRecord, now time.Time) (DayItems, error) {
	var items DayItems
	var ishaEnd time.Time
	for _, prayer := range Prayers {
		end, err := ResolveInstant(date, window.EndClock(prayer), now.Location())
		if err != nil {
			return DayItems{}, fmt.Errorf("%s end: %w", prayer, err)
		}

		if prayer == Isha {
			ishaEnd = end
		}

		items.Prayers.set(prayer, classify(record.Done(prayer), end, now))
	}

	items.Fast = classify(record.Done(Fast), ishaEnd, now)
	return items, nil
}
