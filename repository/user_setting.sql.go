package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const selectUserSetting = `-- name: SelectUserSetting :one
SELECT user_id, city_name, latitude, longitude, timezone, updated_at FROM user_setting WHERE user_id = $1
`

func (q *Queries) SelectUserSetting(ctx context.Context, userID pgtype.UUID) (UserSetting, error) {
	row := q.db.QueryRow(ctx, selectUserSetting, userID)
	var i UserSetting
	err := row.Scan(
		&i.UserID,
		&i.CityName,
		&i.Latitude,
		&i.Longitude,
		&i.Timezone,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertUserSetting = `-- name: UpsertUserSetting :one
INSERT INTO user_setting (user_id, city_name, latitude, longitude, timezone)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
  city_name = EXCLUDED.city_name,
  latitude = EXCLUDED.latitude,
  longitude = EXCLUDED.longitude,
  timezone = EXCLUDED.timezone,
  updated_at = NOW()
RETURNING user_id, city_name, latitude, longitude, timezone, updated_at
`

type UpsertUserSettingParams struct {
	UserID    pgtype.UUID
	CityName  string
	Latitude  float64
	Longitude float64
	Timezone  string
}

func (q *Queries) UpsertUserSetting(ctx context.Context, arg UpsertUserSettingParams) (UserSetting, error) {
	row := q.db.QueryRow(ctx, upsertUserSetting,
		arg.UserID,
		arg.CityName,
		arg.Latitude,
		arg.Longitude,
		arg.Timezone,
	)
	var i UserSetting
	err := row.Scan(
		&i.UserID,
		&i.CityName,
		&i.Latitude,
		&i.Longitude,
		&i.Timezone,
		&i.UpdatedAt,
	)
	return i, err
}
