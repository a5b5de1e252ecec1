package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type DayRecord struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	DayNumber int16
	Date      pgtype.Date
	Fajr      bool
	Dhuhr     bool
	Asr       bool
	Maghrib   bool
	Isha      bool
	Fast      bool
	UpdatedAt pgtype.Timestamptz
}

type PrayerWindow struct {
	ID         pgtype.UUID
	UserID     pgtype.UUID
	DayNumber  int16
	Date       pgtype.Date
	FajrEnd    string
	DhuhrEnd   string
	AsrEnd     string
	MaghribEnd string
	IshaEnd    string
}

type RamadanConfig struct {
	ID        int16
	TotalDays int16
	StartDate pgtype.Date
}

type RefreshToken struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	Revoked   bool
	ExpiresAt pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

type User struct {
	ID        pgtype.UUID
	Email     string
	Name      string
	Password  string
	CreatedAt pgtype.Timestamptz
}

type UserSetting struct {
	UserID    pgtype.UUID
	CityName  string
	Latitude  float64
	Longitude float64
	Timezone  string
	UpdatedAt pgtype.Timestamptz
}
