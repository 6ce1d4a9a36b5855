package usecases

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
)

type ReservationUsecase interface {
	Create(userID int, req entities.ReservationRequest) (entities.Reservation, error)
	UpdateStatus(reservationID, targetStatus, adminNotes, callerRole string) error
	Remove(reservationID string, callerID int, callerRole string) error
	ListByUser(userID int) ([]entities.Reservation, error)
	ListPending() ([]entities.Reservation, error)
}

type reservationUsecase struct {
	resRepo      repositories.ReservationRepository
	roomRepo     repositories.RoomRepository
	scheduleRepo repositories.ScheduleRepository
}

func NewReservationUsecase(resRepo repositories.ReservationRepository, roomRepo repositories.RoomRepository, scheduleRepo repositories.ScheduleRepository) ReservationUsecase {
	return &reservationUsecase{resRepo: resRepo, roomRepo: roomRepo, scheduleRepo: scheduleRepo}
}

// Create inserts a new reservation. The status field of the request is
// ignored: every reservation starts Pending. Requests overlapping a
// confirmed reservation or an applicable schedule are rejected up front.
func (u *reservationUsecase) Create(userID int, req entities.ReservationRequest) (entities.Reservation, error) {
	var reservation entities.Reservation

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return reservation, NewValidationError("invalid date format, use YYYY-MM-DD")
	}
	start, err := ParseClock(req.StartTime)
	if err != nil {
		return reservation, err
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return reservation, err
	}
	if start >= end {
		return reservation, NewValidationError("start time must be before end time")
	}
	// Re-render the clocks so stored values are always zero-padded; the
	// overlap query compares them lexically.
	startClock := FormatClock(start)
	endClock := FormatClock(end)

	exists, err := u.roomRepo.Exists(req.RoomNum)
	if err != nil {
		log.Printf("reservation create: room lookup failed: %v", err)
		return reservation, NewDataStoreError("internal server error")
	}
	if !exists {
		return reservation, NewNotFoundError("room not found")
	}

	overlapping, err := u.resRepo.CountOverlapping(req.RoomNum, req.Date, startClock, endClock)
	if err != nil {
		log.Printf("reservation create: overlap check failed: %v", err)
		return reservation, NewDataStoreError("internal server error")
	}
	if overlapping > 0 {
		return reservation, NewConflictError("room is already booked for that time")
	}

	schedules, err := u.scheduleRepo.GetByRoom(req.RoomNum)
	if err != nil {
		log.Printf("reservation create: schedule lookup failed: %v", err)
		return reservation, NewDataStoreError("internal server error")
	}
	for _, s := range schedules {
		if !scheduleAppliesOn(s, day) {
			continue
		}
		sStart, err := ParseClock(s.StartTime)
		if err != nil {
			return reservation, err
		}
		sEnd, err := ParseClock(s.EndTime)
		if err != nil {
			return reservation, err
		}
		if start < sEnd && end > sStart {
			return reservation, NewConflictError("requested time conflicts with a room schedule")
		}
	}

	reservation = entities.Reservation{
		ReservationID: uuid.NewString(),
		UserID:        userID,
		RoomNum:       req.RoomNum,
		Date:          req.Date,
		StartTime:     startClock,
		EndTime:       endClock,
		Reason:        req.Reason,
		Message:       req.Message,
		Status:        entities.StatusPending,
	}
	if err := u.resRepo.Create(reservation); err != nil {
		log.Printf("reservation create: insert failed: %v", err)
		return reservation, NewDataStoreError("internal server error")
	}
	return reservation, nil
}

// UpdateStatus moves a Pending reservation to Confirmed or Rejected.
// Admin only; reservations already decided stay decided.
func (u *reservationUsecase) UpdateStatus(reservationID, targetStatus, adminNotes, callerRole string) error {
	if callerRole != entities.RoleAdmin {
		return NewAuthorizationError("admin role required")
	}
	if targetStatus != entities.StatusConfirmed && targetStatus != entities.StatusRejected {
		return NewValidationError("status must be Confirmed or Rejected")
	}

	current, err := u.resRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewNotFoundError("reservation not found")
		}
		log.Printf("reservation status: lookup failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if current.Status != entities.StatusPending {
		return NewValidationError("only pending reservations can be updated")
	}

	if err := u.resRepo.UpdateStatus(reservationID, targetStatus, adminNotes); err != nil {
		log.Printf("reservation status: update failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	return nil
}

// Remove hard-deletes a reservation. Owners may delete their own in any
// state; admins may delete anything.
func (u *reservationUsecase) Remove(reservationID string, callerID int, callerRole string) error {
	current, err := u.resRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewNotFoundError("reservation not found")
		}
		log.Printf("reservation remove: lookup failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if callerRole != entities.RoleAdmin && current.UserID != callerID {
		return NewAuthorizationError("not allowed to delete this reservation")
	}

	if _, err := u.resRepo.Delete(reservationID); err != nil {
		log.Printf("reservation remove: delete failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	return nil
}

func (u *reservationUsecase) ListByUser(userID int) ([]entities.Reservation, error) {
	reservations, err := u.resRepo.ListByUser(userID)
	if err != nil {
		log.Printf("reservation list: query failed: %v", err)
		return nil, NewDataStoreError("internal server error")
	}
	return reservations, nil
}

func (u *reservationUsecase) ListPending() ([]entities.Reservation, error) {
	reservations, err := u.resRepo.ListByStatus(entities.StatusPending)
	if err != nil {
		log.Printf("reservation pending list: query failed: %v", err)
		return nil, NewDataStoreError("internal server error")
	}
	return reservations, nil
}
