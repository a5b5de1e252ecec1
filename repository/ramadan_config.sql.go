package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const selectRamadanConfig = `-- name: SelectRamadanConfig :one
SELECT id, total_days, start_date FROM ramadan_config WHERE id = 1
`

func (q *Queries) SelectRamadanConfig(ctx context.Context) (RamadanConfig, error) {
	row := q.db.QueryRow(ctx, selectRamadanConfig)
	var i RamadanConfig
	err := row.Scan(&i.ID, &i.TotalDays, &i.StartDate)
	return i, err
}

const upsertRamadanConfig = `-- name: UpsertRamadanConfig :one
INSERT INTO ramadan_config (id, total_days, start_date)
VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE SET total_days = EXCLUDED.total_days, start_date = EXCLUDED.start_date
RETURNING id, total_days, start_date
`

type UpsertRamadanConfigParams struct {
	TotalDays int16
	StartDate pgtype.Date
}

func (q *Queries) UpsertRamadanConfig(ctx context.Context, arg UpsertRamadanConfigParams) (RamadanConfig, error) {
	row := q.db.QueryRow(ctx, upsertRamadanConfig, arg.TotalDays, arg.StartDate)
	var i RamadanConfig
	err := row.Scan(&i.ID, &i.TotalDays, &i.StartDate)
	return i, err
}
