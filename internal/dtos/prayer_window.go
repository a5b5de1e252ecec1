package dtos

type PrayerWindowResponse struct {
	DayNumber  int    `json:"day_number"`
	Date       string `json:"date"`
	FajrEnd    string `json:"fajr_end"`
	DhuhrEnd   string `json:"dhuhr_end"`
	AsrEnd     string `json:"asr_end"`
	MaghribEnd string `json:"maghrib_end"`
	IshaEnd    string `json:"isha_end"`
}

type SyncPrayerWindowsResponse struct {
	Fetched int                    `json:"fetched"`
	Failed  int                    `json:"failed"`
	Windows []PrayerWindowResponse `json:"windows"`
}
