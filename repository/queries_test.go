package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dayRecordColumns = []string{"id", "user_id", "day_number", "date", "fajr", "dhuhr", "asr", "maghrib", "isha", "fast", "updated_at"}

var prayerWindowColumns = []string{"id", "user_id", "day_number", "date", "fajr_end", "dhuhr_end", "asr_end", "maghrib_end", "isha_end"}

func newUUID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func newDate(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func TestUpsertUserDayRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	queries := New(mock)
	query := regexp.QuoteMeta(upsertUserDayRecord)
	ctx := context.Background()

	arg := UpsertUserDayRecordParams{
		ID:        newUUID(),
		UserID:    newUUID(),
		DayNumber: 3,
		Date:      newDate(2025, time.March, 3),
		Fajr:      pgtype.Bool{Bool: true, Valid: true},
		Isha:      pgtype.Bool{Bool: false, Valid: true},
	}
	updatedAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows(dayRecordColumns).
					AddRow(arg.ID, arg.UserID, arg.DayNumber, arg.Date, true, true, false, false, false, false, updatedAt)
				mock.ExpectQuery(query).
					WithArgs(arg.ID, arg.UserID, arg.DayNumber, arg.Date, arg.Fajr, pgtype.Bool{}, pgtype.Bool{}, pgtype.Bool{}, arg.Isha, pgtype.Bool{}).
					WillReturnRows(rows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(arg.ID, arg.UserID, arg.DayNumber, arg.Date, arg.Fajr, pgtype.Bool{}, pgtype.Bool{}, pgtype.Bool{}, arg.Isha, pgtype.Bool{}).
					WillReturnError(errors.New("db error"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			record, err := queries.UpsertUserDayRecord(ctx, arg)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, arg.DayNumber, record.DayNumber)
			assert.True(t, record.Fajr)
			assert.True(t, record.Dhuhr, "a NULL flag keeps the stored value")
			assert.False(t, record.Isha)
			assert.Equal(t, updatedAt, record.UpdatedAt)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectUserDayRecords(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	queries := New(mock)
	userID := newUUID()
	updatedAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	rows := pgxmock.NewRows(dayRecordColumns).
		AddRow(newUUID(), userID, int16(1), newDate(2025, time.March, 1), true, true, true, true, true, true, updatedAt).
		AddRow(newUUID(), userID, int16(2), newDate(2025, time.March, 2), false, true, false, false, false, false, updatedAt)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserDayRecords)).WithArgs(userID).WillReturnRows(rows)

	records, err := queries.SelectUserDayRecords(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int16(1), records[0].DayNumber)
	assert.True(t, records[0].Fast)
	assert.Equal(t, int16(2), records[1].DayNumber)
	assert.True(t, records[1].Dhuhr)
	assert.False(t, records[1].Fajr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectUserPrayerWindows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	queries := New(mock)
	userID := newUUID()

	rows := pgxmock.NewRows(prayerWindowColumns).
		AddRow(newUUID(), userID, int16(1), newDate(2025, time.March, 1), "05:55", "13:20", "18:05", "19:25", "20:45")
	mock.ExpectQuery(regexp.QuoteMeta(selectUserPrayerWindows)).WithArgs(userID).WillReturnRows(rows)

	windows, err := queries.SelectUserPrayerWindows(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "05:55", windows[0].FajrEnd)
	assert.Equal(t, "20:45", windows[0].IshaEnd)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserPrayerWindows)).WithArgs(userID).WillReturnError(errors.New("db error"))
	_, err = queries.SelectUserPrayerWindows(context.Background(), userID)
	assert.EqualError(t, err, "db error")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserPrayerWindows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	queries := New(mock)
	userID := newUUID()

	mock.ExpectExec(regexp.QuoteMeta(deleteUserPrayerWindows)).WithArgs(userID).WillReturnResult(pgxmock.NewResult("DELETE", 30))

	deleted, err := queries.DeleteUserPrayerWindows(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeUserRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	queries := New(mock)
	query := regexp.QuoteMeta(revokeUserRefreshToken)
	arg := RevokeUserRefreshTokenParams{ID: newUUID(), UserID: newUUID()}

	t.Run("successful", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(arg.ID, arg.UserID).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(arg.ID))

		id, err := queries.RevokeUserRefreshToken(context.Background(), arg)
		require.NoError(t, err)
		assert.Equal(t, arg.ID, id)
	})

	t.Run("already revoked", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(arg.ID, arg.UserID).WillReturnError(pgx.ErrNoRows)

		_, err := queries.RevokeUserRefreshToken(context.Background(), arg)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRamadanConfig(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	queries := New(mock)
	startDate := newDate(2025, time.March, 1)

	mock.ExpectQuery(regexp.QuoteMeta(upsertRamadanConfig)).
		WithArgs(int16(30), startDate).
		WillReturnRows(pgxmock.NewRows([]string{"id", "total_days", "start_date"}).AddRow(int16(1), int16(30), startDate))

	config, err := queries.UpsertRamadanConfig(context.Background(), UpsertRamadanConfigParams{TotalDays: 30, StartDate: startDate})
	require.NoError(t, err)
	assert.Equal(t, int16(30), config.TotalDays)
	assert.Equal(t, startDate, config.StartDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}
