package usecases

import (
	"database/sql"
	"errors"
	"log"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
)

type RoomUsecase interface {
	Create(room entities.RoomRequest) error
	GetAll() ([]entities.Room, error)
	GetByNumber(roomNumber string) (entities.Room, error)
	Update(roomNumber string, room entities.RoomRequest) error
	Delete(roomNumber string) error
}

type roomUsecase struct {
	roomRepo repositories.RoomRepository
}

func NewRoomUsecase(roomRepo repositories.RoomRepository) RoomUsecase {
	return &roomUsecase{roomRepo: roomRepo}
}

func (u *roomUsecase) Create(room entities.RoomRequest) error {
	exists, err := u.roomRepo.Exists(room.RoomNumber)
	if err != nil {
		log.Printf("room create: existence check failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if exists {
		return NewConflictError("room number already exists")
	}
	if room.Status == "" {
		room.Status = "Available"
	}
	if err := u.roomRepo.Create(room); err != nil {
		log.Printf("room create: insert failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	return nil
}

func (u *roomUsecase) GetAll() ([]entities.Room, error) {
	rooms, err := u.roomRepo.GetAll()
	if err != nil {
		log.Printf("room list: query failed: %v", err)
		return nil, NewDataStoreError("internal server error")
	}
	return rooms, nil
}

func (u *roomUsecase) GetByNumber(roomNumber string) (entities.Room, error) {
	room, err := u.roomRepo.GetByNumber(roomNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return room, NewNotFoundError("room not found")
		}
		log.Printf("room get: query failed: %v", err)
		return room, NewDataStoreError("internal server error")
	}
	return room, nil
}

// Update is keyed by the current room number and allows renaming, so a
// rename to an occupied number has to be caught here.
func (u *roomUsecase) Update(roomNumber string, room entities.RoomRequest) error {
	if room.RoomNumber != roomNumber {
		taken, err := u.roomRepo.Exists(room.RoomNumber)
		if err != nil {
			log.Printf("room update: existence check failed: %v", err)
			return NewDataStoreError("internal server error")
		}
		if taken {
			return NewConflictError("room number already exists")
		}
	}
	if room.Status == "" {
		room.Status = "Available"
	}
	rowsAffected, err := u.roomRepo.Update(roomNumber, room)
	if err != nil {
		log.Printf("room update: update failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if rowsAffected == 0 {
		return NewNotFoundError("room not found")
	}
	return nil
}

// Delete removes the room; its schedules and reservations go with it via
// the foreign keys.
func (u *roomUsecase) Delete(roomNumber string) error {
	rowsAffected, err := u.roomRepo.Delete(roomNumber)
	if err != nil {
		log.Printf("room delete: delete failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if rowsAffected == 0 {
		return NewNotFoundError("room not found")
	}
	return nil
}
