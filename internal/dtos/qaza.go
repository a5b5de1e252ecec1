package dtos

type QazaResponse struct {
	Fajr         int  `json:"fajr"`
	Dhuhr        int  `json:"dhuhr"`
	Asr          int  `json:"asr"`
	Maghrib      int  `json:"maghrib"`
	Isha         int  `json:"isha"`
	Fast         int  `json:"fast"`
	TotalPrayers int  `json:"total_prayers"`
	TotalMissed  int  `json:"total_missed"`
	AllClear     bool `json:"all_clear"`
}
