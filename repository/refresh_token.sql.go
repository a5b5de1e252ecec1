package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertUserRefreshToken = `-- name: InsertUserRefreshToken :one
INSERT INTO refresh_token (id, user_id, expires_at)
VALUES ($1, $2, $3)
RETURNING id, user_id, revoked, expires_at, created_at
`

type InsertUserRefreshTokenParams struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	ExpiresAt pgtype.Timestamptz
}

func (q *Queries) InsertUserRefreshToken(ctx context.Context, arg InsertUserRefreshTokenParams) (RefreshToken, error) {
	row := q.db.QueryRow(ctx, insertUserRefreshToken, arg.ID, arg.UserID, arg.ExpiresAt)
	var i RefreshToken
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Revoked,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const selectUserRefreshToken = `-- name: SelectUserRefreshToken :one
SELECT id, user_id, revoked, expires_at, created_at FROM refresh_token
WHERE id = $1 AND user_id = $2
`

type SelectUserRefreshTokenParams struct {
	ID     pgtype.UUID
	UserID pgtype.UUID
}

func (q *Queries) SelectUserRefreshToken(ctx context.Context, arg SelectUserRefreshTokenParams) (RefreshToken, error) {
	row := q.db.QueryRow(ctx, selectUserRefreshToken, arg.ID, arg.UserID)
	var i RefreshToken
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Revoked,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const revokeUserRefreshToken = `-- name: RevokeUserRefreshToken :one
UPDATE refresh_token SET revoked = TRUE
WHERE id = $1 AND user_id = $2 AND revoked = FALSE
RETURNING id
`

type RevokeUserRefreshTokenParams struct {
	ID     pgtype.UUID
	UserID pgtype.UUID
}

func (q *Queries) RevokeUserRefreshToken(ctx context.Context, arg RevokeUserRefreshTokenParams) (pgtype.UUID, error) {
	row := q.db.QueryRow(ctx, revokeUserRefreshToken, arg.ID, arg.UserID)
	var id pgtype.UUID
	err := row.Scan(&id)
	return id, err
}
