package tracker

import "time"

// ApplyToggle returns a copy of records where item of dayNumber is set to done. A record
// is created for the day when none exists yet. records itself is left untouched.
func ApplyToggle(records []DayRecord, dayNumber int, date string, item Item, done bool, now time.Time) []DayRecord {
	updated := make([]DayRecord, len(records), len(records)+1)
	copy(updated, records)

	for i := range updated {
		if updated[i].DayNumber != dayNumber {
			continue
		}

		updated[i].set(item, done)
		updated[i].UpdatedAt = now
		return updated
	}

	record := DayRecord{DayNumber: dayNumber, Date: date, UpdatedAt: now}
	record.set(item, done)
	return append(updated, record)
}

// MergeRecord returns a copy of records where the record of record's day is replaced
// by record, or appended when the day was never touched.
func MergeRecord(records []DayRecord, record DayRecord) []DayRecord {
	merged := make([]DayRecord, len(records), len(records)+1)
	copy(merged, records)

	for i := range merged {
		if merged[i].DayNumber == record.DayNumber {
			merged[i] = record
			return merged
		}
	}
	return append(merged, record)
}
