package entities

import (
	"time"
)

// Request body for the room endpoints.
type RoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,gt=0"`
	RoomType   string `json:"room_type" validate:"required,oneof=classroom laboratory conference-room"`
	Status     string `json:"status" validate:"omitempty,oneof=Available Unavailable Maintenance"`
}

// Response struct for rooms
type Room struct {
	RoomNumber string    `json:"room_number"`
	Capacity   int       `json:"capacity"`
	RoomType   string    `json:"room_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
