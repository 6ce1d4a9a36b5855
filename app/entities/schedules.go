package entities

// ScheduledTime is a block during which a room is occupied outside the
// reservation workflow (class schedules and the like). Exactly one of
// Days/Date is meaningful, selected by Regular.
type ScheduledTime struct {
	TimeslotID string   `json:"timeslot_id"`
	RoomNum    string   `json:"room_num"`
	Regular    bool     `json:"regular"`
	StartTime  string   `json:"start_time"` // HH:MM
	EndTime    string   `json:"end_time"`   // HH:MM
	Days       []string `json:"days,omitempty"` // weekday codes, recurring only
	Date       string   `json:"date,omitempty"` // YYYY-MM-DD, one-off only
}

type ScheduleRequest struct {
	RoomNum   string   `json:"room_num" validate:"required"`
	Regular   bool     `json:"regular"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time" validate:"required"`
	Days      []string `json:"days" validate:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Date      string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type RemoveScheduleRequest struct {
	TimeslotID string `json:"timeslot_id" validate:"required"`
}

// Room plus its schedules, recurring entries first. Used by the grouped
// listing endpoint that feeds the admin schedule page.
type RoomSchedules struct {
	Room      Room            `json:"room"`
	Schedules []ScheduledTime `json:"schedules"`
}
