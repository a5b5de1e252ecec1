package tracker

type CalendarStatus string

const (
	CalendarAllDone CalendarStatus = "all-done"
	CalendarPartial CalendarStatus = "partial"
	CalendarMissed  CalendarStatus = "missed"
	CalendarPending CalendarStatus = "pending"
	CalendarFuture  CalendarStatus = "future"
)

// DayCalendarStatus compresses a day into a single calendar label. The first matching
// rule wins: future, all done, missed with nothing pending, anything pending, pending.
func DayCalendarStatus(day DayStatus) CalendarStatus {
	if day.IsFuture {
		return CalendarFuture
	}

	allDone, anyMissed, anyPending := true, false, false
	for _, item := range Items {
		switch day.Items().Get(item) {
		case Done:
		case Missed:
			allDone = false
			anyMissed = true
		case Pending:
			allDone = false
			anyPending = true
		default:
			allDone = false
		}
	}

	switch {
	case allDone:
		return CalendarAllDone
	case anyMissed && !anyPending:
		return CalendarMissed
	case anyPending:
		return CalendarPartial
	default:
		return CalendarPending
	}
}
