package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSettings(t *testing.T) {
	ctx := context.Background()
	userUUID := uuid.New()
	userID := pgtype.UUID{Bytes: userUUID, Valid: true}
	updatedAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	arg := UpsertSettingsParams{
		UserId:    userUUID.String(),
		CityName:  "Bandung",
		Latitude:  -6.917464,
		Longitude: 107.619123,
		Timezone:  "Asia/Jakarta",
	}

	expectUpsert := func(mock pgxmock.PgxPoolIface) {
		mock.ExpectQuery(`INSERT INTO user_setting`).
			WithArgs(userID, arg.CityName, arg.Latitude, arg.Longitude, arg.Timezone).
			WillReturnRows(pgxmock.NewRows(settingColumns).AddRow(userID, arg.CityName, arg.Latitude, arg.Longitude, arg.Timezone, updatedAt))
	}

	testCases := []struct {
		Desc            string
		LocationChanged bool
		MockPrepFunc    func(mock pgxmock.PgxPoolIface)
	}{
		{
			Desc:            "first settings",
			LocationChanged: true,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FROM user_setting WHERE user_id = \$1`).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
				expectUpsert(mock)
				mock.ExpectExec(`DELETE FROM prayer_window`).WithArgs(userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectCommit()
			},
		},
		{
			Desc:            "moved city",
			LocationChanged: true,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FROM user_setting WHERE user_id = \$1`).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(settingColumns).AddRow(userID, "Jakarta", -6.175110, 106.865036, "Asia/Jakarta", updatedAt))
				expectUpsert(mock)
				mock.ExpectExec(`DELETE FROM prayer_window`).WithArgs(userID).WillReturnResult(pgxmock.NewResult("DELETE", 30))
				mock.ExpectCommit()
			},
		},
		{
			Desc:            "renamed city only",
			LocationChanged: false,
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FROM user_setting WHERE user_id = \$1`).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(settingColumns).AddRow(userID, "Kota Bandung", arg.Latitude, arg.Longitude, arg.Timezone, updatedAt))
				expectUpsert(mock)
				mock.ExpectCommit()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tc.MockPrepFunc(mock)
			cache := newFakeQazaCache()
			service := NewUserService(configs.Configs{Db: configs.NewDbWithConn(mock)}, cache)

			result, err := service.UpsertSettings(ctx, arg)
			require.NoError(t, err)
			assert.Equal(t, tc.LocationChanged, result.LocationChanged)
			assert.Equal(t, "Bandung", result.Setting.CityName)
			if tc.LocationChanged {
				assert.Equal(t, []string{arg.UserId}, cache.invalidated)
			} else {
				assert.Empty(t, cache.invalidated)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetSettingsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userUUID := uuid.New()
	mock.ExpectQuery(`FROM user_setting WHERE user_id = \$1`).
		WithArgs(pgtype.UUID{Bytes: userUUID, Valid: true}).
		WillReturnError(pgx.ErrNoRows)

	service := NewUserService(configs.Configs{Db: configs.NewDbWithConn(mock)}, newFakeQazaCache())
	_, err = service.GetSettings(context.Background(), userUUID.String())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
