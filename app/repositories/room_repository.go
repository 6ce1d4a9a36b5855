package repositories

import (
	"database/sql"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

type RoomRepository interface {
	Create(room entities.RoomRequest) error
	GetAll() ([]entities.Room, error)
	GetByNumber(roomNumber string) (entities.Room, error)
	Update(roomNumber string, room entities.RoomRequest) (int64, error)
	Delete(roomNumber string) (int64, error)
	Exists(roomNumber string) (bool, error)
}

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room entities.RoomRequest) error {
	query := `
        INSERT INTO rooms (room_number, capacity, room_type, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
    `
	_, err := r.db.Exec(query, room.RoomNumber, room.Capacity, room.RoomType, room.Status)
	return err
}

func (r *roomRepository) GetAll() ([]entities.Room, error) {
	query := `
        SELECT room_number, capacity, room_type, status, created_at, updated_at
        FROM rooms
        ORDER BY room_number
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []entities.Room
	for rows.Next() {
		var room entities.Room
		if err := rows.Scan(&room.RoomNumber, &room.Capacity, &room.RoomType, &room.Status, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *roomRepository) GetByNumber(roomNumber string) (entities.Room, error) {
	query := `
        SELECT room_number, capacity, room_type, status, created_at, updated_at
        FROM rooms WHERE room_number = $1
    `
	var room entities.Room
	err := r.db.QueryRow(query, roomNumber).Scan(
		&room.RoomNumber, &room.Capacity, &room.RoomType, &room.Status,
		&room.CreatedAt, &room.UpdatedAt,
	)
	return room, err
}

// Update is keyed by the current room number; the request may carry a new
// one, which renames the room. Schedule and reservation rows follow via
// ON UPDATE CASCADE.
func (r *roomRepository) Update(roomNumber string, room entities.RoomRequest) (int64, error) {
	query := `
        UPDATE rooms
        SET room_number=$1, capacity=$2, room_type=$3, status=$4, updated_at=NOW()
        WHERE room_number=$5
    `
	res, err := r.db.Exec(query, room.RoomNumber, room.Capacity, room.RoomType, room.Status, roomNumber)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *roomRepository) Delete(roomNumber string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM rooms WHERE room_number=$1`, roomNumber)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *roomRepository) Exists(roomNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM rooms WHERE room_number = $1)`, roomNumber).Scan(&exists)
	return exists, err
}
