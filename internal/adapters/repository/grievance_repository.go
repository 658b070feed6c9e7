package repository

import (
	"context"
	"database/sql"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type GrievanceSQLRepository struct {
	db *sql.DB
}

var _ ports.GrievanceRepository = (*GrievanceSQLRepository)(nil)

func NewGrievanceSQLRepository(db *sql.DB) *GrievanceSQLRepository {
	return &GrievanceSQLRepository{db: db}
}

func (r *GrievanceSQLRepository) Create(ctx context.Context, grievance *domain.Grievance) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO grievances (roommate_id, grievance_content, created_at, is_read)
         VALUES ($1, $2, $3, $4)
         RETURNING grievance_id`,
		grievance.RoommateID,
		grievance.GrievanceContent,
		grievance.CreatedAt,
		grievance.IsRead,
	).Scan(&grievance.GrievanceID)
}

func (r *GrievanceSQLRepository) FindPending(ctx context.Context) ([]domain.Grievance, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT g.grievance_id, g.roommate_id, r.username, r.room_number,
                g.grievance_content, g.created_at, g.is_read
         FROM grievances g
         JOIN roommates r ON r.roommate_id = g.roommate_id
         WHERE g.is_read = FALSE
         ORDER BY g.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grievances []domain.Grievance
	for rows.Next() {
		var g domain.Grievance
		err := rows.Scan(
			&g.GrievanceID,
			&g.RoommateID,
			&g.RoommateName,
			&g.RoomNumber,
			&g.GrievanceContent,
			&g.CreatedAt,
			&g.IsRead,
		)
		if err != nil {
			return nil, err
		}
		grievances = append(grievances, g)
	}
	return grievances, rows.Err()
}

func (r *GrievanceSQLRepository) MarkRead(ctx context.Context, grievanceID int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE grievances SET is_read = TRUE WHERE grievance_id = $1", grievanceID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.BusinessErrorf("Entered Grievance Id was invalid")
	}
	return nil
}
