package tracker

type QazaSummary struct {
	Fajr         int `json:"fajr"`
	Dhuhr        int `json:"dhuhr"`
	Asr          int `json:"asr"`
	Maghrib      int `json:"maghrib"`
	Isha         int `json:"isha"`
	Fast         int `json:"fast"`
	TotalPrayers int `json:"total_prayers"`
}

func (q QazaSummary) Missed(item Item) int {
	switch item {
	case Fajr:
		return q.Fajr
	case Dhuhr:
		return q.Dhuhr
	case Asr:
		return q.Asr
	case Maghrib:
		return q.Maghrib
	case Isha:
		return q.Isha
	case Fast:
		return q.Fast
	default:
		return 0
	}
}

// TotalMissed counts missed prayers and missed fasts together.
func (q QazaSummary) TotalMissed() int {
	return q.TotalPrayers + q.Fast
}

func (q QazaSummary) AllClear() bool {
	return q.TotalMissed() == 0
}

func (q *QazaSummary) addMissed(prayer Item) {
	switch prayer {
	case Fajr:
		q.Fajr++
	case Dhuhr:
		q.Dhuhr++
	case Asr:
		q.Asr++
	case Maghrib:
		q.Maghrib++
	case Isha:
		q.Isha++
	default:
		return
	}
	q.TotalPrayers++
}

// ComputeQaza counts missed items across days. Future days never count, whatever
// their item statuses say.
func ComputeQaza(days []DayStatus) QazaSummary {
	var summary QazaSummary
	for _, day := range days {
		if day.IsFuture {
			continue
		}

		for _, prayer := range Prayers {
			if day.Prayers.Get(prayer) == Missed {
				summary.addMissed(prayer)
			}
		}

		if day.Fast == Missed {
			summary.Fast++
		}
	}

	return summary
}
