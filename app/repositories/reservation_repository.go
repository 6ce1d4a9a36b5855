package repositories

import (
	"database/sql"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

type ReservationRepository interface {
	Create(reservation entities.Reservation) error
	GetByID(reservationID string) (entities.Reservation, error)
	UpdateStatus(reservationID, status, adminNotes string) error
	Delete(reservationID string) (int64, error)
	ListByUser(userID int) ([]entities.Reservation, error)
	ListByStatus(status string) ([]entities.Reservation, error)
	CountOverlapping(roomNum, date, startTime, endTime string) (int, error)
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(res entities.Reservation) error {
	query := `
		INSERT INTO reservations (reservation_id, user_id, room_num, date, start_time, end_time, reason, message, admin_notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '', $9, NOW(), NOW())
	`
	_, err := r.db.Exec(query,
		res.ReservationID, res.UserID, res.RoomNum, res.Date,
		res.StartTime, res.EndTime, res.Reason, res.Message, res.Status,
	)
	return err
}

func (r *reservationRepository) GetByID(reservationID string) (entities.Reservation, error) {
	query := `
		SELECT reservation_id, user_id, room_num, date::text, start_time, end_time, reason, message, admin_notes, status, created_at, updated_at
		FROM reservations WHERE reservation_id = $1
	`
	var res entities.Reservation
	err := r.db.QueryRow(query, reservationID).Scan(
		&res.ReservationID, &res.UserID, &res.RoomNum, &res.Date,
		&res.StartTime, &res.EndTime, &res.Reason, &res.Message,
		&res.AdminNotes, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	return res, err
}

func (r *reservationRepository) UpdateStatus(reservationID, status, adminNotes string) error {
	query := `
		UPDATE reservations
		SET status=$1, admin_notes=$2, updated_at=NOW()
		WHERE reservation_id=$3
	`
	_, err := r.db.Exec(query, status, adminNotes, reservationID)
	return err
}

func (r *reservationRepository) Delete(reservationID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM reservations WHERE reservation_id=$1`, reservationID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *reservationRepository) ListByUser(userID int) ([]entities.Reservation, error) {
	query := `
		SELECT reservation_id, user_id, room_num, date::text, start_time, end_time, reason, message, admin_notes, status, created_at, updated_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY date DESC, start_time
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) ListByStatus(status string) ([]entities.Reservation, error) {
	query := `
		SELECT reservation_id, user_id, room_num, date::text, start_time, end_time, reason, message, admin_notes, status, created_at, updated_at
		FROM reservations
		WHERE status = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// CountOverlapping counts Confirmed reservations touching the half-open
// window [startTime, endTime) on the given room and date. HH:MM strings are
// zero-padded, so plain string comparison orders them correctly.
func (r *reservationRepository) CountOverlapping(roomNum, date, startTime, endTime string) (int, error) {
	query := `
		SELECT COUNT(*) FROM reservations
		WHERE room_num = $1 AND date = $2 AND status = 'Confirmed'
		AND start_time < $4 AND end_time > $3
	`
	var count int
	err := r.db.QueryRow(query, roomNum, date, startTime, endTime).Scan(&count)
	return count, err
}

func scanReservations(rows *sql.Rows) ([]entities.Reservation, error) {
	var reservations []entities.Reservation
	for rows.Next() {
		var res entities.Reservation
		if err := rows.Scan(
			&res.ReservationID, &res.UserID, &res.RoomNum, &res.Date,
			&res.StartTime, &res.EndTime, &res.Reason, &res.Message,
			&res.AdminNotes, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
