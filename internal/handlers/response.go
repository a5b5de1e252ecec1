package handlers

import (
	"time"

	"github.com/mdayat/qaza-tracker-service/internal/dtos"
	"github.com/mdayat/qaza-tracker-service/internal/services"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
	"github.com/mdayat/qaza-tracker-service/repository"
)

func toUserResponse(user repository.User) dtos.UserResponse {
	return dtos.UserResponse{
		Id:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Time.Format(time.RFC3339),
	}
}

func toSettingsResponse(setting repository.UserSetting) dtos.SettingsResponse {
	return dtos.SettingsResponse{
		CityName:  setting.CityName,
		Latitude:  setting.Latitude,
		Longitude: setting.Longitude,
		Timezone:  setting.Timezone,
		UpdatedAt: setting.UpdatedAt.Time.Format(time.RFC3339),
	}
}

func toPrayerWindowResponses(windows []tracker.PrayerWindow) []dtos.PrayerWindowResponse {
	resBody := make([]dtos.PrayerWindowResponse, 0, len(windows))
	for _, window := range windows {
		resBody = append(resBody, dtos.PrayerWindowResponse{
			DayNumber:  window.DayNumber,
			Date:       window.Date,
			FajrEnd:    window.FajrEnd,
			DhuhrEnd:   window.DhuhrEnd,
			AsrEnd:     window.AsrEnd,
			MaghribEnd: window.MaghribEnd,
			IshaEnd:    window.IshaEnd,
		})
	}
	return resBody
}

func toDayResponse(day tracker.DayStatus) dtos.DayResponse {
	return dtos.DayResponse{
		DayNumber: day.DayNumber,
		Date:      day.Date,
		Prayers: dtos.PrayerStatusesResponse{
			Fajr:    string(day.Prayers.Fajr),
			Dhuhr:   string(day.Prayers.Dhuhr),
			Asr:     string(day.Prayers.Asr),
			Maghrib: string(day.Prayers.Maghrib),
			Isha:    string(day.Prayers.Isha),
		},
		Fast:           string(day.Fast),
		IsToday:        day.IsToday,
		IsPast:         day.IsPast,
		IsFuture:       day.IsFuture,
		CalendarStatus: string(tracker.DayCalendarStatus(day)),
	}
}

func toQazaResponse(summary tracker.QazaSummary) dtos.QazaResponse {
	return dtos.QazaResponse{
		Fajr:         summary.Fajr,
		Dhuhr:        summary.Dhuhr,
		Asr:          summary.Asr,
		Maghrib:      summary.Maghrib,
		Isha:         summary.Isha,
		Fast:         summary.Fast,
		TotalPrayers: summary.TotalPrayers,
		TotalMissed:  summary.TotalMissed(),
		AllClear:     summary.AllClear(),
	}
}

func toOverviewResponse(result services.OverviewResult) dtos.OverviewResponse {
	days := make([]dtos.DayResponse, 0, len(result.Overview.Days))
	for _, day := range result.Overview.Days {
		days = append(days, toDayResponse(day))
	}

	calendar := make([]dtos.CalendarDayResponse, 0, len(result.Overview.Calendar))
	for _, calendarDay := range result.Overview.Calendar {
		calendar = append(calendar, dtos.CalendarDayResponse{
			DayNumber: calendarDay.DayNumber,
			Date:      calendarDay.Date,
			Status:    string(calendarDay.Status),
			IsToday:   calendarDay.IsToday,
		})
	}

	invalidDays := make([]dtos.InvalidDayResponse, 0, len(result.InvalidDays))
	for _, dayErr := range result.InvalidDays {
		invalidDays = append(invalidDays, dtos.InvalidDayResponse{
			DayNumber: dayErr.DayNumber,
			Error:     dayErr.Err.Error(),
		})
	}

	return dtos.OverviewResponse{
		Days:        days,
		Calendar:    calendar,
		Qaza:        toQazaResponse(result.Overview.Qaza),
		InvalidDays: invalidDays,
	}
}
