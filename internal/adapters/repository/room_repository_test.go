package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

func setupMockRoomRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *RoomSQLRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewRoomSQLRepository(db)
}

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"room_id", "floor_number", "room_number", "room_type", "capacity",
		"current_capacity", "is_ac_available", "price", "per_day_price",
	})
}

func roommateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"roommate_id", "unique_id", "username", "password", "email", "gender",
		"rent_amount", "rent_status", "with_food", "check_in_date", "check_out_date",
		"last_modified_date", "referral_id", "referral_count", "room_number",
	})
}

func TestRoomSQLRepository_FindAll(t *testing.T) {
	db, mock, repo := setupMockRoomRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM rooms ORDER BY room_number`).
		WillReturnRows(roomRows().
			AddRow(1, 1, "F1", "Single Sharing", 1, 1, true, 8500.0, 284.0).
			AddRow(4, 2, "S1", "Single Sharing", 1, 0, false, 8000.0, 267.0))

	mock.ExpectQuery(`SELECT .+ FROM roommates`).
		WillReturnRows(roommateRows().
			AddRow(1, "alic1234", "alice1", "hash", "alice@example.com", "female",
				8500.0, "PAYMENT_DONE", true, time.Now(), nil, time.Now(),
				"alice1-abcdefgh", 0, "F1"))

	rooms, err := repo.FindAll(t.Context())

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "F1", rooms[0].RoomNumber)
	require.Len(t, rooms[0].RoommateList, 1)
	assert.Equal(t, "alice1", rooms[0].RoommateList[0].Username)
	assert.Empty(t, rooms[1].RoommateList)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomSQLRepository_FindByID_NotFound(t *testing.T) {
	db, mock, repo := setupMockRoomRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM rooms WHERE room_id`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	room, err := repo.FindByID(t.Context(), 99)

	require.NoError(t, err)
	assert.Nil(t, room)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomSQLRepository_Create(t *testing.T) {
	db, mock, repo := setupMockRoomRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO rooms`).
		WithArgs(3, "T1", "Two Sharing", 2, 0, true, 9000.0, 300.0).
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(7))

	room := &domain.Room{
		FloorNumber:   3,
		RoomNumber:    "T1",
		RoomType:      "Two Sharing",
		Capacity:      2,
		IsAcAvailable: true,
		Price:         9000,
		PerDayPrice:   300,
	}
	err := repo.Create(t.Context(), room)

	require.NoError(t, err)
	assert.Equal(t, 7, room.RoomID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomSQLRepository_ExistsByRoomNumber(t *testing.T) {
	db, mock, repo := setupMockRoomRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("F1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByRoomNumber(t.Context(), "F1")

	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomSQLRepository_Count(t *testing.T) {
	db, mock, repo := setupMockRoomRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rooms`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.Count(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 6, count)

	require.NoError(t, mock.ExpectationsWereMet())
}
