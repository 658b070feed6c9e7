package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type RoomSQLRepository struct {
	db *sql.DB
}

var _ ports.RoomRepository = (*RoomSQLRepository)(nil)

func NewRoomSQLRepository(db *sql.DB) *RoomSQLRepository {
	return &RoomSQLRepository{db: db}
}

const roomColumns = "room_id, floor_number, room_number, room_type, capacity, current_capacity, is_ac_available, price, per_day_price"

func scanRoom(row interface{ Scan(...any) error }) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.RoomID,
		&room.FloorNumber,
		&room.RoomNumber,
		&room.RoomType,
		&room.Capacity,
		&room.CurrentCapacity,
		&room.IsAcAvailable,
		&room.Price,
		&room.PerDayPrice,
	)
	if err != nil {
		return nil, err
	}
	room.RoommateList = []domain.Roommate{}
	return &room, nil
}

func (r *RoomSQLRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+roomColumns+" FROM rooms ORDER BY room_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRoommates(ctx, rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// attachRoommates fills each room's embedded tenant list in one pass.
func (r *RoomSQLRepository) attachRoommates(ctx context.Context, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx, "SELECT "+roommateColumns+" FROM roommates")
	if err != nil {
		return err
	}
	defer rows.Close()

	byRoom := make(map[string][]domain.Roommate)
	for rows.Next() {
		roommate, err := scanRoommate(rows)
		if err != nil {
			return err
		}
		byRoom[roommate.RoomNumber] = append(byRoom[roommate.RoomNumber], *roommate)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range rooms {
		if list, ok := byRoom[rooms[i].RoomNumber]; ok {
			rooms[i].RoommateList = list
		}
	}
	return nil
}

func (r *RoomSQLRepository) FindByID(ctx context.Context, roomID int) (*domain.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE room_id = $1", roomID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rooms := []domain.Room{*room}
	if err := r.attachRoommatesOf(ctx, rooms); err != nil {
		return nil, err
	}
	return &rooms[0], nil
}

func (r *RoomSQLRepository) FindByRoomNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE room_number = $1", roomNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rooms := []domain.Room{*room}
	if err := r.attachRoommatesOf(ctx, rooms); err != nil {
		return nil, err
	}
	return &rooms[0], nil
}

// attachRoommatesOf loads tenants for exactly the given rooms.
func (r *RoomSQLRepository) attachRoommatesOf(ctx context.Context, rooms []domain.Room) error {
	for i := range rooms {
		rows, err := r.db.QueryContext(ctx,
			"SELECT "+roommateColumns+" FROM roommates WHERE room_number = $1", rooms[i].RoomNumber)
		if err != nil {
			return err
		}
		for rows.Next() {
			roommate, err := scanRoommate(rows)
			if err != nil {
				rows.Close()
				return err
			}
			rooms[i].RoommateList = append(rooms[i].RoommateList, *roommate)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()
	}
	return nil
}

func (r *RoomSQLRepository) ExistsByRoomNumber(ctx context.Context, roomNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM rooms WHERE room_number = $1)", roomNumber).Scan(&exists)
	return exists, err
}

func (r *RoomSQLRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO rooms (floor_number, room_number, room_type, capacity, current_capacity, is_ac_available, price, per_day_price)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING room_id`,
		room.FloorNumber,
		room.RoomNumber,
		room.RoomType,
		room.Capacity,
		room.CurrentCapacity,
		room.IsAcAvailable,
		room.Price,
		room.PerDayPrice,
	).Scan(&room.RoomID)
}

func (r *RoomSQLRepository) Update(ctx context.Context, room *domain.Room) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE rooms
         SET floor_number = $1, room_number = $2, room_type = $3, capacity = $4,
             current_capacity = $5, is_ac_available = $6, price = $7, per_day_price = $8
         WHERE room_id = $9`,
		room.FloorNumber,
		room.RoomNumber,
		room.RoomType,
		room.Capacity,
		room.CurrentCapacity,
		room.IsAcAvailable,
		room.Price,
		room.PerDayPrice,
		room.RoomID,
	)
	return err
}

func (r *RoomSQLRepository) Delete(ctx context.Context, roomID int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE room_id = $1", roomID)
	return err
}

func (r *RoomSQLRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms").Scan(&count)
	return count, err
}
