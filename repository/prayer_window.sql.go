package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const selectUserPrayerWindows = `-- name: SelectUserPrayerWindows :many
SELECT id, user_id, day_number, date, fajr_end, dhuhr_end, asr_end, maghrib_end, isha_end
FROM prayer_window WHERE user_id = $1 ORDER BY day_number
`

func (q *Queries) SelectUserPrayerWindows(ctx context.Context, userID pgtype.UUID) ([]PrayerWindow, error) {
	rows, err := q.db.Query(ctx, selectUserPrayerWindows, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PrayerWindow
	for rows.Next() {
		var i PrayerWindow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.DayNumber,
			&i.Date,
			&i.FajrEnd,
			&i.DhuhrEnd,
			&i.AsrEnd,
			&i.MaghribEnd,
			&i.IshaEnd,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertUserPrayerWindow = `-- name: UpsertUserPrayerWindow :one
INSERT INTO prayer_window (id, user_id, day_number, date, fajr_end, dhuhr_end, asr_end, maghrib_end, isha_end)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id, date) DO UPDATE SET
  day_number = EXCLUDED.day_number,
  fajr_end = EXCLUDED.fajr_end,
  dhuhr_end = EXCLUDED.dhuhr_end,
  asr_end = EXCLUDED.asr_end,
  maghrib_end = EXCLUDED.maghrib_end,
  isha_end = EXCLUDED.isha_end
RETURNING id, user_id, day_number, date, fajr_end, dhuhr_end, asr_end, maghrib_end, isha_end
`

type UpsertUserPrayerWindowParams struct {
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

func (q *Queries) UpsertUserPrayerWindow(ctx context.Context, arg UpsertUserPrayerWindowParams) (PrayerWindow, error) {
	row := q.db.QueryRow(ctx, upsertUserPrayerWindow,
		arg.ID,
		arg.UserID,
		arg.DayNumber,
		arg.Date,
		arg.FajrEnd,
		arg.DhuhrEnd,
		arg.AsrEnd,
		arg.MaghribEnd,
		arg.IshaEnd,
	)
	var i PrayerWindow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.DayNumber,
		&i.Date,
		&i.FajrEnd,
		&i.DhuhrEnd,
		&i.AsrEnd,
		&i.MaghribEnd,
		&i.IshaEnd,
	)
	return i, err
}

const deleteUserPrayerWindows = `-- name: DeleteUserPrayerWindows :execrows
DELETE FROM prayer_window WHERE user_id = $1
`

func (q *Queries) DeleteUserPrayerWindows(ctx context.Context, userID pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteUserPrayerWindows, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
