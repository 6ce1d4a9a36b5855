package entities

import (
	"time"
)

// Reservation lifecycle states. Created reservations always start Pending;
// only an admin moves them to Confirmed or Rejected.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusRejected  = "Rejected"
)

// ==========================================
// 1. REQUEST MODELS
// ==========================================

type ReservationRequest struct {
	RoomNum   string `json:"room_num" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Reason    string `json:"reason" validate:"required,oneof=class exam org-activity consultation other"`
	Message   string `json:"message"`
	// Status is ignored on create; every new reservation starts Pending.
	Status string `json:"status"`
}

type UpdateReservationRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	AdminNotes    string `json:"admin_notes"`
}

type RemoveReservationRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
}

// ==========================================
// 2. RESPONSE / REPOSITORY MODELS
// ==========================================

type Reservation struct {
	ReservationID string    `json:"reservation_id"`
	UserID        int       `json:"user_id"`
	RoomNum       string    `json:"room_num"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Reason        string    `json:"reason"`
	Message       string    `json:"message"`
	AdminNotes    string    `json:"admin_notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	Message string        `json:"message"`
	Data    []Reservation `json:"data"`
}
