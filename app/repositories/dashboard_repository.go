package repositories

import (
	"database/sql"
	"time"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

type DashboardRepository interface {
	GetTotals() (rooms, users int, err error)
	GetReservationCounts(start, end time.Time) (total, pending int, err error)
	GetRoomStats(start, end time.Time, totalReservations int) ([]entities.RoomStat, error)
}

type dashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetTotals() (int, int, error) {
	var rooms, users int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&rooms); err != nil {
		return 0, 0, err
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		return 0, 0, err
	}
	return rooms, users, nil
}

func (r *dashboardRepository) GetReservationCounts(start, end time.Time) (int, int, error) {
	var total, pending int
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Pending')
		FROM reservations
		WHERE date BETWEEN $1 AND $2
	`
	err := r.db.QueryRow(query, start, end).Scan(&total, &pending)
	return total, pending, err
}

func (r *dashboardRepository) GetRoomStats(start, end time.Time, totalReservations int) ([]entities.RoomStat, error) {
	query := `
		SELECT rm.room_number, rm.room_type, COUNT(res.reservation_id)
		FROM rooms rm
		LEFT JOIN reservations res
			ON res.room_num = rm.room_number AND res.date BETWEEN $1 AND $2
		GROUP BY rm.room_number, rm.room_type
		ORDER BY COUNT(res.reservation_id) DESC, rm.room_number
	`
	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []entities.RoomStat
	for rows.Next() {
		var s entities.RoomStat
		if err := rows.Scan(&s.RoomNumber, &s.RoomType, &s.Reservations); err != nil {
			return nil, err
		}
		if totalReservations > 0 {
			s.Percentage = float64(s.Reservations) / float64(totalReservations) * 100
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
