package usecases

import (
	"log"

	"github.com/google/uuid"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
)

type ScheduleUsecase interface {
	Add(req entities.ScheduleRequest) (entities.ScheduledTime, error)
	Remove(timeslotID string) error
	ListByRoom(roomNum string) ([]entities.ScheduledTime, error)
	ListAllGroupedByRoom() ([]entities.RoomSchedules, error)
}

type scheduleUsecase struct {
	scheduleRepo repositories.ScheduleRepository
	roomRepo     repositories.RoomRepository
}

func NewScheduleUsecase(scheduleRepo repositories.ScheduleRepository, roomRepo repositories.RoomRepository) ScheduleUsecase {
	return &scheduleUsecase{scheduleRepo: scheduleRepo, roomRepo: roomRepo}
}

// Add validates and stores a schedule block. Schedules are never edited in
// place; changing one is a remove followed by a fresh add.
func (u *scheduleUsecase) Add(req entities.ScheduleRequest) (entities.ScheduledTime, error) {
	var schedule entities.ScheduledTime

	start, err := ParseClock(req.StartTime)
	if err != nil {
		return schedule, err
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return schedule, err
	}
	if start >= end {
		return schedule, NewValidationError("start time must be before end time")
	}

	// Exactly one of days/date, selected by regular.
	if req.Regular {
		if len(req.Days) == 0 {
			return schedule, NewValidationError("recurring schedules require at least one day")
		}
		if req.Date != "" {
			return schedule, NewValidationError("recurring schedules must not carry a date")
		}
	} else {
		if req.Date == "" {
			return schedule, NewValidationError("one-off schedules require a date")
		}
		if len(req.Days) > 0 {
			return schedule, NewValidationError("one-off schedules must not carry days")
		}
	}

	exists, err := u.roomRepo.Exists(req.RoomNum)
	if err != nil {
		log.Printf("schedule add: room lookup failed: %v", err)
		return schedule, NewDataStoreError("internal server error")
	}
	if !exists {
		return schedule, NewNotFoundError("room not found")
	}

	schedule = entities.ScheduledTime{
		TimeslotID: uuid.NewString(),
		RoomNum:    req.RoomNum,
		Regular:    req.Regular,
		// Zero-padded form; start_time also drives the repository ordering.
		StartTime: FormatClock(start),
		EndTime:   FormatClock(end),
		Days:       req.Days,
		Date:       req.Date,
	}
	if err := u.scheduleRepo.Create(schedule); err != nil {
		log.Printf("schedule add: insert failed: %v", err)
		return schedule, NewDataStoreError("internal server error")
	}
	return schedule, nil
}

func (u *scheduleUsecase) Remove(timeslotID string) error {
	rowsAffected, err := u.scheduleRepo.Delete(timeslotID)
	if err != nil {
		log.Printf("schedule remove: delete failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if rowsAffected == 0 {
		return NewNotFoundError("schedule not found")
	}
	return nil
}

func (u *scheduleUsecase) ListByRoom(roomNum string) ([]entities.ScheduledTime, error) {
	exists, err := u.roomRepo.Exists(roomNum)
	if err != nil {
		log.Printf("schedule list: room lookup failed: %v", err)
		return nil, NewDataStoreError("internal server error")
	}
	if !exists {
		return nil, NewNotFoundError("room not found")
	}
	schedules, err := u.scheduleRepo.GetByRoom(roomNum)
	if err != nil {
		log.Printf("schedule list: query failed: %v", err)
		return nil, NewDataStoreError("internal server error")
	}
	return schedules, nil
}

// ListAllGroupedByRoom joins rooms with their schedules, rooms ordered by
// number and schedules recurring-first (the repository orders them).
func (u *scheduleUsecase) ListAllGroupedByRoom() ([]entities.RoomSchedules, error) {
	rooms, err := u.roomRepo.GetAll()
	if err != nil {
		log.Printf("schedule grouped list: room query failed: %v", err)
		return nil, NewDataStoreError("internal server error")
	}
	schedules, err := u.scheduleRepo.GetAll()
	if err != nil {
		log.Printf("schedule grouped list: schedule query failed: %v", err)
		return nil, NewDataStoreError("internal server error")
	}

	byRoom := make(map[string][]entities.ScheduledTime)
	for _, s := range schedules {
		byRoom[s.RoomNum] = append(byRoom[s.RoomNum], s)
	}

	grouped := make([]entities.RoomSchedules, 0, len(rooms))
	for _, room := range rooms {
		grouped = append(grouped, entities.RoomSchedules{
			Room:      room,
			Schedules: byRoom[room.RoomNumber],
		})
	}
	return grouped, nil
}
