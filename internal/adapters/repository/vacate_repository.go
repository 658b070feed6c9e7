package repository

import (
	"context"
	"database/sql"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type VacateSQLRepository struct {
	db *sql.DB
}

var _ ports.VacateRepository = (*VacateSQLRepository)(nil)

func NewVacateSQLRepository(db *sql.DB) *VacateSQLRepository {
	return &VacateSQLRepository{db: db}
}

func (r *VacateSQLRepository) Create(ctx context.Context, request *domain.VacateRequest) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO vacate_requests (roommate_id, vacate_reason, check_out_date, is_read, created_at)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING vacate_request_id`,
		request.RoommateID,
		request.VacateReason,
		request.CheckOutDate,
		request.IsRead,
		request.CreatedAt,
	).Scan(&request.VacateRequestID)
}

func (r *VacateSQLRepository) ExistsForRoommate(ctx context.Context, roommateID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM vacate_requests WHERE roommate_id = $1)", roommateID).Scan(&exists)
	return exists, err
}

// FindPending returns unread requests decorated with the tenant's name and
// room number for the owner console.
func (r *VacateSQLRepository) FindPending(ctx context.Context) ([]domain.VacateRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT v.vacate_request_id, v.roommate_id, r.username, r.room_number,
                v.vacate_reason, v.check_out_date, v.is_read, v.created_at
         FROM vacate_requests v
         JOIN roommates r ON r.roommate_id = v.roommate_id
         WHERE v.is_read = FALSE
         ORDER BY v.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.VacateRequest
	for rows.Next() {
		var v domain.VacateRequest
		err := rows.Scan(
			&v.VacateRequestID,
			&v.RoommateID,
			&v.RoommateName,
			&v.RoomNumber,
			&v.VacateReason,
			&v.CheckOutDate,
			&v.IsRead,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, v)
	}
	return requests, rows.Err()
}

func (r *VacateSQLRepository) Delete(ctx context.Context, vacateRequestID int) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM vacate_requests WHERE vacate_request_id = $1", vacateRequestID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.BusinessErrorf("Vacate request not found")
	}
	return nil
}
