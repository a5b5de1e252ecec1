package dtos

type PrayerStatusesResponse struct {
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

type DayResponse struct {
	DayNumber      int                    `json:"day_number"`
	Date           string                 `json:"date"`
	Prayers        PrayerStatusesResponse `json:"prayers"`
	Fast           string                 `json:"fast"`
	IsToday        bool                   `json:"is_today"`
	IsPast         bool                   `json:"is_past"`
	IsFuture       bool                   `json:"is_future"`
	CalendarStatus string                 `json:"calendar_status"`
}

type CalendarDayResponse struct {
	DayNumber int    `json:"day_number"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	IsToday   bool   `json:"is_today"`
}

type InvalidDayResponse struct {
	DayNumber int    `json:"day_number"`
	Error     string `json:"error"`
}

type OverviewResponse struct {
	Days        []DayResponse         `json:"days"`
	Calendar    []CalendarDayResponse `json:"calendar"`
	Qaza        QazaResponse          `json:"qaza"`
	InvalidDays []InvalidDayResponse  `json:"invalid_days"`
}

type SetItemRequest struct {
	Item string `json:"item" validate:"required,prayer_item"`
	Done *bool  `json:"done" validate:"required"`
}

type SetItemResponse struct {
	Persisted bool             `json:"persisted"`
	Overview  OverviewResponse `json:"overview"`
}
