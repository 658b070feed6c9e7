package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type RoommateSQLRepository struct {
	db *sql.DB
}

var _ ports.RoommateRepository = (*RoommateSQLRepository)(nil)

func NewRoommateSQLRepository(db *sql.DB) *RoommateSQLRepository {
	return &RoommateSQLRepository{db: db}
}

const roommateColumns = `roommate_id, unique_id, username, password, email, gender,
    rent_amount, rent_status, with_food, check_in_date, check_out_date,
    last_modified_date, referral_id, referral_count, room_number`

// roommateSortColumns whitelists sortField values from the dashboard
// against real columns.
var roommateSortColumns = map[string]string{
	"username":    "username",
	"email":       "email",
	"rentAmount":  "rent_amount",
	"rentStatus":  "rent_status",
	"roomNumber":  "room_number",
	"checkInDate": "check_in_date",
}

func scanRoommate(row interface{ Scan(...any) error }) (*domain.Roommate, error) {
	var rm domain.Roommate
	var checkOut sql.NullTime
	err := row.Scan(
		&rm.RoommateID,
		&rm.UniqueID,
		&rm.Username,
		&rm.Password,
		&rm.Email,
		&rm.Gender,
		&rm.RentAmount,
		&rm.RentStatus,
		&rm.WithFood,
		&rm.CheckInDate,
		&checkOut,
		&rm.LastModifiedDate,
		&rm.ReferralID,
		&rm.ReferralCount,
		&rm.RoomNumber,
	)
	if err != nil {
		return nil, err
	}
	if checkOut.Valid {
		rm.CheckOutDate = domain.Date{Time: checkOut.Time}
	}
	rm.PaymentList = []domain.Payment{}
	rm.ReferralDetails = []domain.ReferralDetail{}
	rm.Grievances = []domain.Grievance{}
	return &rm, nil
}

func (r *RoommateSQLRepository) FindAll(ctx context.Context) ([]domain.Roommate, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+roommateColumns+" FROM roommates ORDER BY roommate_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roommates []domain.Roommate
	for rows.Next() {
		rm, err := scanRoommate(rows)
		if err != nil {
			return nil, err
		}
		roommates = append(roommates, *rm)
	}
	return roommates, rows.Err()
}

func (r *RoommateSQLRepository) FindByID(ctx context.Context, roommateID int) (*domain.Roommate, error) {
	rm, err := scanRoommate(r.db.QueryRowContext(ctx,
		"SELECT "+roommateColumns+" FROM roommates WHERE roommate_id = $1", roommateID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadAssociations(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *RoommateSQLRepository) FindByUsername(ctx context.Context, username string) (*domain.Roommate, error) {
	rm, err := scanRoommate(r.db.QueryRowContext(ctx,
		"SELECT "+roommateColumns+" FROM roommates WHERE LOWER(username) = LOWER($1)", username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadAssociations(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *RoommateSQLRepository) FindByReferralID(ctx context.Context, referralID string) (*domain.Roommate, error) {
	rm, err := scanRoommate(r.db.QueryRowContext(ctx,
		"SELECT "+roommateColumns+" FROM roommates WHERE referral_id = $1", referralID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rm, nil
}

// loadAssociations fills the profile's payment history, referrals and
// grievances.
func (r *RoommateSQLRepository) loadAssociations(ctx context.Context, rm *domain.Roommate) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE roommate_id = $1 ORDER BY payment_date DESC", rm.RoommateID)
	if err != nil {
		return err
	}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			rows.Close()
			return err
		}
		rm.PaymentList = append(rm.PaymentList, *p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx,
		`SELECT referral_detail_id, username, referral_date, roommate_unique_id
         FROM referral_details WHERE referrer_id = $1 ORDER BY referral_date`, rm.RoommateID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var rd domain.ReferralDetail
		if err := rows.Scan(&rd.ID, &rd.Username, &rd.ReferralDate, &rd.RoommateUniqueID); err != nil {
			rows.Close()
			return err
		}
		rm.ReferralDetails = append(rm.ReferralDetails, rd)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx,
		`SELECT grievance_id, roommate_id, grievance_content, created_at, is_read
         FROM grievances WHERE roommate_id = $1 ORDER BY created_at DESC`, rm.RoommateID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var g domain.Grievance
		if err := rows.Scan(&g.GrievanceID, &g.RoommateID, &g.GrievanceContent, &g.CreatedAt, &g.IsRead); err != nil {
			return err
		}
		g.RoommateName = rm.Username
		g.RoomNumber = rm.RoomNumber
		rm.Grievances = append(rm.Grievances, g)
	}
	return rows.Err()
}

func (r *RoommateSQLRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM roommates WHERE LOWER(username) = LOWER($1))", username).Scan(&exists)
	return exists, err
}

func (r *RoommateSQLRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM roommates WHERE LOWER(email) = LOWER($1))", email).Scan(&exists)
	return exists, err
}

func (r *RoommateSQLRepository) CreateInRoom(ctx context.Context, roommate *domain.Roommate, roomID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO roommates (unique_id, username, password, email, gender, rent_amount,
             rent_status, with_food, check_in_date, check_out_date, last_modified_date,
             referral_id, referral_count, room_number)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
         RETURNING roommate_id`,
		roommate.UniqueID,
		roommate.Username,
		roommate.Password,
		roommate.Email,
		roommate.Gender,
		roommate.RentAmount,
		roommate.RentStatus,
		roommate.WithFood,
		roommate.CheckInDate,
		roommate.CheckOutDate,
		roommate.LastModifiedDate,
		roommate.ReferralID,
		roommate.ReferralCount,
		roommate.RoomNumber,
	).Scan(&roommate.RoommateID)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE rooms SET current_capacity = current_capacity + 1
         WHERE room_id = $1 AND current_capacity < capacity`, roomID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.BusinessErrorf("Room was Full")
	}

	return tx.Commit()
}

func (r *RoommateSQLRepository) Remove(ctx context.Context, roommate *domain.Roommate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM roommates WHERE roommate_id = $1", roommate.RoommateID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rooms SET current_capacity = current_capacity - 1
         WHERE room_number = $1 AND current_capacity > 0`, roommate.RoomNumber); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *RoommateSQLRepository) Update(ctx context.Context, roommate *domain.Roommate) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE roommates
         SET username = $1, password = $2, email = $3, gender = $4, rent_amount = $5,
             rent_status = $6, with_food = $7, check_in_date = $8, check_out_date = $9,
             last_modified_date = $10, referral_id = $11, referral_count = $12, room_number = $13
         WHERE roommate_id = $14`,
		roommate.Username,
		roommate.Password,
		roommate.Email,
		roommate.Gender,
		roommate.RentAmount,
		roommate.RentStatus,
		roommate.WithFood,
		roommate.CheckInDate,
		roommate.CheckOutDate,
		roommate.LastModifiedDate,
		roommate.ReferralID,
		roommate.ReferralCount,
		roommate.RoomNumber,
		roommate.RoommateID,
	)
	return err
}

func (r *RoommateSQLRepository) UpdateRentBatch(ctx context.Context, roommates []domain.Roommate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"UPDATE roommates SET rent_amount = $1, rent_status = $2 WHERE roommate_id = $3")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rm := range roommates {
		if _, err := stmt.ExecContext(ctx, rm.RentAmount, rm.RentStatus, rm.RoommateID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *RoommateSQLRepository) AddReferral(ctx context.Context, referrerID int, detail domain.ReferralDetail) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE roommates SET referral_count = referral_count + 1 WHERE roommate_id = $1",
		referrerID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO referral_details (referrer_id, username, referral_date, roommate_unique_id)
         VALUES ($1, $2, $3, $4)`,
		referrerID,
		detail.Username,
		detail.ReferralDate,
		detail.RoommateUniqueID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *RoommateSQLRepository) PruneReferrals(ctx context.Context, referrerID int, activeUniqueIDs []string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM referral_details
         WHERE referrer_id = $1 AND NOT (roommate_unique_id = ANY($2))`,
		referrerID, pq.Array(activeUniqueIDs))
	return err
}

func (r *RoommateSQLRepository) FindPage(ctx context.Context, req domain.PageRequest, rentStatus *domain.RentStatus) (domain.Page[domain.Roommate], error) {
	var empty domain.Page[domain.Roommate]

	column, ok := roommateSortColumns[req.SortField]
	if !ok {
		column = "username"
	}
	direction := "ASC"
	if req.Descending() {
		direction = "DESC"
	}

	where := ""
	args := []any{req.Limit, req.Offset()}
	if rentStatus != nil {
		where = "WHERE rent_status = $3"
		args = append(args, *rentStatus)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM roommates %s ORDER BY %s %s LIMIT $1 OFFSET $2",
		roommateColumns, where, column, direction)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	content := []domain.Roommate{}
	for rows.Next() {
		rm, err := scanRoommate(rows)
		if err != nil {
			return empty, err
		}
		content = append(content, *rm)
	}
	if err := rows.Err(); err != nil {
		return empty, err
	}

	var total int64
	if rentStatus != nil {
		err = r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM roommates WHERE rent_status = $1", *rentStatus).Scan(&total)
	} else {
		err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM roommates").Scan(&total)
	}
	if err != nil {
		return empty, err
	}

	return domain.NewPage(content, total, req.Page, req.Limit), nil
}
