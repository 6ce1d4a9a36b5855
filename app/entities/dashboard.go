package entities

type DashboardResponse struct {
	Message string `json:"message"`
	Data    struct {
		TotalRoom          int        `json:"totalRoom"`
		TotalUser          int        `json:"totalUser"`
		TotalReservation   int        `json:"totalReservation"`
		PendingReservation int        `json:"pendingReservation"`
		Rooms              []RoomStat `json:"rooms"`
	} `json:"data"`
}

// RoomStat is the per-room share of reservations inside the queried range.
type RoomStat struct {
	RoomNumber   string  `json:"room_number"`
	RoomType     string  `json:"room_type"`
	Reservations int     `json:"reservations"`
	Percentage   float64 `json:"percentage"`
}
