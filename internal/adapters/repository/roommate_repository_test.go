package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

func setupMockRoommateRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *RoommateSQLRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewRoommateSQLRepository(db)
}

func paymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"payment_id", "amount", "payment_status", "payment_date", "transaction_id",
		"payment_method", "username", "room_number", "roommate_id",
	})
}

func TestRoommateSQLRepository_FindByUsername(t *testing.T) {
	db, mock, repo := setupMockRoommateRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM roommates WHERE LOWER\(username\)`).
		WithArgs("Alice1").
		WillReturnRows(roommateRows().
			AddRow(1, "alic1234", "alice1", "hash", "alice@example.com", "female",
				7600.0, "PAYMENT_PENDING", true, time.Now(), nil, time.Now(),
				"alice1-abcdefgh", 1, "F1"))

	mock.ExpectQuery(`SELECT .+ FROM payments WHERE roommate_id`).
		WithArgs(1).
		WillReturnRows(paymentRows().
			AddRow(10, 7600.0, "PAYMENT_DONE", time.Now(), "pay_456", "upi", "alice1", "F1", 1))

	mock.ExpectQuery(`SELECT .+ FROM referral_details WHERE referrer_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"referral_detail_id", "username", "referral_date", "roommate_unique_id",
		}).AddRow(3, "bob123", time.Now(), "bob15678"))

	mock.ExpectQuery(`SELECT .+ FROM grievances WHERE roommate_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"grievance_id", "roommate_id", "grievance_content", "created_at", "is_read",
		}).AddRow(5, 1, "leaky tap", time.Now(), false))

	rm, err := repo.FindByUsername(t.Context(), "Alice1")

	require.NoError(t, err)
	require.NotNil(t, rm)
	assert.Equal(t, "alice1", rm.Username)
	require.Len(t, rm.PaymentList, 1)
	assert.Equal(t, "pay_456", rm.PaymentList[0].TransactionID)
	require.Len(t, rm.ReferralDetails, 1)
	assert.Equal(t, "bob15678", rm.ReferralDetails[0].RoommateUniqueID)
	require.Len(t, rm.Grievances, 1)
	assert.Equal(t, "alice1", rm.Grievances[0].RoommateName)
	assert.Equal(t, "F1", rm.Grievances[0].RoomNumber)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoommateSQLRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock, repo := setupMockRoommateRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM roommates WHERE LOWER\(username\)`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	rm, err := repo.FindByUsername(t.Context(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, rm)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoommateSQLRepository_CreateInRoom(t *testing.T) {
	t.Run("occupies_a_free_slot", func(t *testing.T) {
		db, mock, repo := setupMockRoommateRepo(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO roommates`).
			WillReturnRows(sqlmock.NewRows([]string{"roommate_id"}).AddRow(5))
		mock.ExpectExec(`UPDATE rooms SET current_capacity = current_capacity \+ 1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rm := &domain.Roommate{Username: "alice1", RoomNumber: "F1"}
		err := repo.CreateInRoom(t.Context(), rm, 1)

		require.NoError(t, err)
		assert.Equal(t, 5, rm.RoommateID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls_back_when_the_room_is_full", func(t *testing.T) {
		db, mock, repo := setupMockRoommateRepo(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO roommates`).
			WillReturnRows(sqlmock.NewRows([]string{"roommate_id"}).AddRow(5))
		mock.ExpectExec(`UPDATE rooms SET current_capacity = current_capacity \+ 1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		rm := &domain.Roommate{Username: "alice1", RoomNumber: "F1"}
		err := repo.CreateInRoom(t.Context(), rm, 1)

		require.Error(t, err)
		assert.True(t, domain.IsBusinessError(err))
		assert.Equal(t, "Room was Full", err.Error())

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoommateSQLRepository_PruneReferrals(t *testing.T) {
	db, mock, repo := setupMockRoommateRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM referral_details`).
		WithArgs(1, pq.Array([]string{"bob15678"})).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PruneReferrals(t.Context(), 1, []string{"bob15678"})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoommateSQLRepository_FindPage(t *testing.T) {
	t.Run("unknown_sort_field_falls_back_to_username", func(t *testing.T) {
		db, mock, repo := setupMockRoommateRepo(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM roommates\s+ORDER BY username ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(roommateRows().
				AddRow(1, "alic1234", "alice1", "hash", "alice@example.com", "female",
					7600.0, "PAYMENT_DONE", true, time.Now(), nil, time.Now(),
					"alice1-abcdefgh", 0, "F1"))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM roommates`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		page, err := repo.FindPage(t.Context(),
			domain.PageRequest{Page: 0, Limit: 10, SortField: "favouriteColour"}, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(3), page.TotalElements)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "alice1", page.Content[0].Username)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters_by_rent_status", func(t *testing.T) {
		db, mock, repo := setupMockRoommateRepo(t)
		defer db.Close()

		pending := domain.RentPaymentPending
		mock.ExpectQuery(`SELECT .+ FROM roommates WHERE rent_status = \$3`).
			WithArgs(10, 0, pending).
			WillReturnRows(roommateRows())
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM roommates WHERE rent_status`).
			WithArgs(pending).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		page, err := repo.FindPage(t.Context(),
			domain.PageRequest{Page: 0, Limit: 10, SortField: "username"}, &pending)

		require.NoError(t, err)
		assert.Empty(t, page.Content)
		assert.Equal(t, int64(0), page.TotalElements)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
