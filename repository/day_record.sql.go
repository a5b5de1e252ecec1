package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const selectUserDayRecords = `-- name: SelectUserDayRecords :many
SELECT id, user_id, day_number, date, fajr, dhuhr, asr, maghrib, isha, fast, updated_at
FROM day_record WHERE user_id = $1 ORDER BY day_number
`

func (q *Queries) SelectUserDayRecords(ctx context.Context, userID pgtype.UUID) ([]DayRecord, error) {
	rows, err := q.db.Query(ctx, selectUserDayRecords, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DayRecord
	for rows.Next() {
		var i DayRecord
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.DayNumber,
			&i.Date,
			&i.Fajr,
			&i.Dhuhr,
			&i.Asr,
			&i.Maghrib,
			&i.Isha,
			&i.Fast,
			&i.UpdatedAt,
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

const upsertUserDayRecord = `-- name: UpsertUserDayRecord :one
INSERT INTO day_record (id, user_id, day_number, date, fajr, dhuhr, asr, maghrib, isha, fast)
VALUES ($1, $2, $3, $4, COALESCE($5::BOOLEAN, FALSE), COALESCE($6::BOOLEAN, FALSE), COALESCE($7::BOOLEAN, FALSE), COALESCE($8::BOOLEAN, FALSE), COALESCE($9::BOOLEAN, FALSE), COALESCE($10::BOOLEAN, FALSE))
ON CONFLICT (user_id, day_number) DO UPDATE SET
  fajr = COALESCE($5::BOOLEAN, day_record.fajr),
  dhuhr = COALESCE($6::BOOLEAN, day_record.dhuhr),
  asr = COALESCE($7::BOOLEAN, day_record.asr),
  maghrib = COALESCE($8::BOOLEAN, day_record.maghrib),
  isha = COALESCE($9::BOOLEAN, day_record.isha),
  fast = COALESCE($10::BOOLEAN, day_record.fast),
  updated_at = NOW()
RETURNING id, user_id, day_number, date, fajr, dhuhr, asr, maghrib, isha, fast, updated_at
`

// UpsertUserDayRecordParams leaves a stored flag untouched when its field is NULL.
type UpsertUserDayRecordParams struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	DayNumber int16
	Date      pgtype.Date
	Fajr      pgtype.Bool
	Dhuhr     pgtype.Bool
	Asr       pgtype.Bool
	Maghrib   pgtype.Bool
	Isha      pgtype.Bool
	Fast      pgtype.Bool
}

func (q *Queries) UpsertUserDayRecord(ctx context.Context, arg UpsertUserDayRecordParams) (DayRecord, error) {
	row := q.db.QueryRow(ctx, upsertUserDayRecord,
		arg.ID,
		arg.UserID,
		arg.DayNumber,
		arg.Date,
		arg.Fajr,
		arg.Dhuhr,
		arg.Asr,
		arg.Maghrib,
		arg.Isha,
		arg.Fast,
	)
	var i DayRecord
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.DayNumber,
		&i.Date,
		&i.Fajr,
		&i.Dhuhr,
		&i.Asr,
		&i.Maghrib,
		&i.Isha,
		&i.Fast,
		&i.UpdatedAt,
	)
	return i, err
}
