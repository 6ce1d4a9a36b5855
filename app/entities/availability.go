package entities

// FreeSlot is a contiguous bookable window inside the operating day,
// half-open [Start, End).
type FreeSlot struct {
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

type RoomAvailability struct {
	Room      Room       `json:"room"`
	FreeSlots []FreeSlot `json:"free_slots"`
}

type AvailabilityRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type AvailabilityResponse struct {
	Message string             `json:"message"`
	Date    string             `json:"date"`
	Data    []RoomAvailability `json:"data"`
}
