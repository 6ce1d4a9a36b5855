package repositories

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

type ScheduleRepository interface {
	Create(schedule entities.ScheduledTime) error
	Delete(timeslotID string) (int64, error)
	GetAll() ([]entities.ScheduledTime, error)
	GetByRoom(roomNum string) ([]entities.ScheduledTime, error)
}

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(s entities.ScheduledTime) error {
	query := `
        INSERT INTO schedules (timeslot_id, room_num, regular, start_time, end_time, days, date)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
    `
	_, err := r.db.Exec(query, s.TimeslotID, s.RoomNum, s.Regular, s.StartTime, s.EndTime, pq.Array(s.Days), s.Date)
	return err
}

func (r *scheduleRepository) Delete(timeslotID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM schedules WHERE timeslot_id=$1`, timeslotID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *scheduleRepository) GetAll() ([]entities.ScheduledTime, error) {
	query := `
        SELECT timeslot_id, room_num, regular, start_time, end_time, days, COALESCE(date::text, '')
        FROM schedules
        ORDER BY room_num, regular DESC, start_time
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func (r *scheduleRepository) GetByRoom(roomNum string) ([]entities.ScheduledTime, error) {
	query := `
        SELECT timeslot_id, room_num, regular, start_time, end_time, days, COALESCE(date::text, '')
        FROM schedules
        WHERE room_num = $1
        ORDER BY regular DESC, start_time
    `
	rows, err := r.db.Query(query, roomNum)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func scanSchedules(rows *sql.Rows) ([]entities.ScheduledTime, error) {
	var schedules []entities.ScheduledTime
	for rows.Next() {
		var s entities.ScheduledTime
		if err := rows.Scan(&s.TimeslotID, &s.RoomNum, &s.Regular, &s.StartTime, &s.EndTime, pq.Array(&s.Days), &s.Date); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}
