package usecases

import (
	"errors"
	"testing"
	"time"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

type fakeDashboardRepo struct {
	rooms, users   int
	total, pending int
	stats          []entities.RoomStat
	err            error
}

func (f *fakeDashboardRepo) GetTotals() (int, int, error) {
	return f.rooms, f.users, f.err
}

func (f *fakeDashboardRepo) GetReservationCounts(start, end time.Time) (int, int, error) {
	return f.total, f.pending, f.err
}

func (f *fakeDashboardRepo) GetRoomStats(start, end time.Time, totalReservations int) ([]entities.RoomStat, error) {
	return f.stats, f.err
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeDashboardRepo{
		rooms: 5, users: 42, total: 10, pending: 3,
		stats: []entities.RoomStat{{RoomNumber: "201", RoomType: "classroom", Reservations: 6, Percentage: 60}},
	}
	u := NewDashboardUsecase(repo)

	resp, err := u.GetDashboard("2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if resp.Data.TotalRoom != 5 || resp.Data.TotalUser != 42 {
		t.Errorf("unexpected totals: %+v", resp.Data)
	}
	if resp.Data.TotalReservation != 10 || resp.Data.PendingReservation != 3 {
		t.Errorf("unexpected reservation counts: %+v", resp.Data)
	}
	if len(resp.Data.Rooms) != 1 || resp.Data.Rooms[0].RoomNumber != "201" {
		t.Errorf("unexpected room stats: %+v", resp.Data.Rooms)
	}
}

func TestGetDashboard_DateValidation(t *testing.T) {
	u := NewDashboardUsecase(&fakeDashboardRepo{})

	tests := []struct {
		name, start, end string
	}{
		{"missing start", "", "2025-06-30"},
		{"missing end", "2025-06-01", ""},
		{"bad start format", "06/01/2025", "2025-06-30"},
		{"bad end format", "2025-06-01", "June 30"},
		{"start after end", "2025-07-01", "2025-06-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.GetDashboard(tt.start, tt.end)
			if e, ok := err.(*UseCaseError); !ok || e.Code != 400 {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestGetDashboard_DataStoreError(t *testing.T) {
	u := NewDashboardUsecase(&fakeDashboardRepo{err: errors.New("down")})
	_, err := u.GetDashboard("2025-06-01", "2025-06-30")
	if e, ok := err.(*UseCaseError); !ok || e.Code != 500 {
		t.Fatalf("expected 500, got %v", err)
	}
}
