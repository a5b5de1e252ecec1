package tracker

import "time"

// RecomputeInterval is how often callers recompute statuses so that pending items turn
// into missed ones without any write happening.
const RecomputeInterval = 60 * time.Second

type CalendarDay struct {
	DayNumber int            `json:"day_number"`
	Date      string         `json:"date"`
	Status    CalendarStatus `json:"status"`
	IsToday   bool           `json:"is_today"`
}

type Overview struct {
	Days     []DayStatus   `json:"days"`
	Calendar []CalendarDay `json:"calendar"`
	Qaza     QazaSummary   `json:"qaza"`
}

// BuildOverview derives everything shown for an observance from scratch. The error, if
// any, is the one of BuildDayStatuses and the overview still covers the other days.
func BuildOverview(windows []PrayerWindow, records []DayRecord, totalDays int, now time.Time) (Overview, error) {
	days, err := BuildDayStatuses(windows, records, totalDays, now)

	calendar := make([]CalendarDay, 0, len(days))
	for _, day := range days {
		calendar = append(calendar, CalendarDay{
			DayNumber: day.DayNumber,
			Date:      day.Date,
			Status:    DayCalendarStatus(day),
			IsToday:   day.IsToday,
		})
	}

	overview := Overview{
		Days:     days,
		Calendar: calendar,
		Qaza:     ComputeQaza(days),
	}

	return overview, err
}

func (o Overview) Day(dayNumber int) (DayStatus, bool) {
	for _, day := range o.Days {
		if day.DayNumber == dayNumber {
			return day, true
		}
	}
	return DayStatus{}, false
}
