package usecases

import (
	"errors"
	"testing"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

func TestRoomCreate(t *testing.T) {
	roomRepo := &fakeRoomRepo{}
	u := NewRoomUsecase(roomRepo)

	if err := u.Create(entities.RoomRequest{RoomNumber: "201", Capacity: 40, RoomType: "classroom"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(roomRepo.rooms) != 1 {
		t.Fatalf("expected 1 stored room, got %d", len(roomRepo.rooms))
	}
	if roomRepo.rooms[0].Status != "Available" {
		t.Errorf("expected default status Available, got %q", roomRepo.rooms[0].Status)
	}

	err := u.Create(entities.RoomRequest{RoomNumber: "201", Capacity: 20, RoomType: "laboratory"})
	if e, ok := err.(*UseCaseError); !ok || e.Code != 409 {
		t.Fatalf("expected 409 for duplicate room number, got %v", err)
	}
}

func TestRoomGetByNumber(t *testing.T) {
	roomRepo := &fakeRoomRepo{rooms: []entities.Room{{RoomNumber: "201", RoomType: "classroom", Capacity: 40}}}
	u := NewRoomUsecase(roomRepo)

	room, err := u.GetByNumber("201")
	if err != nil {
		t.Fatalf("GetByNumber failed: %v", err)
	}
	if room.Capacity != 40 {
		t.Errorf("expected capacity 40, got %d", room.Capacity)
	}

	_, err = u.GetByNumber("999")
	if e, ok := err.(*UseCaseError); !ok || e.Code != 404 {
		t.Fatalf("expected 404 for unknown room, got %v", err)
	}
}

func TestRoomUpdate(t *testing.T) {
	roomRepo := &fakeRoomRepo{rooms: []entities.Room{
		{RoomNumber: "201", RoomType: "classroom", Capacity: 40, Status: "Available"},
		{RoomNumber: "202", RoomType: "classroom", Capacity: 40, Status: "Available"},
	}}
	u := NewRoomUsecase(roomRepo)

	// Plain field change keeps the number.
	if err := u.Update("201", entities.RoomRequest{RoomNumber: "201", Capacity: 45, RoomType: "classroom", Status: "Maintenance"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if roomRepo.rooms[0].Status != "Maintenance" {
		t.Errorf("expected status Maintenance, got %q", roomRepo.rooms[0].Status)
	}

	// Rename onto an occupied number is refused.
	err := u.Update("201", entities.RoomRequest{RoomNumber: "202", Capacity: 45, RoomType: "classroom"})
	if e, ok := err.(*UseCaseError); !ok || e.Code != 409 {
		t.Fatalf("expected 409 for rename collision, got %v", err)
	}

	// Rename onto a free number works.
	if err := u.Update("201", entities.RoomRequest{RoomNumber: "210", Capacity: 45, RoomType: "classroom"}); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if roomRepo.rooms[0].RoomNumber != "210" {
		t.Errorf("expected room renamed to 210, got %q", roomRepo.rooms[0].RoomNumber)
	}

	err = u.Update("999", entities.RoomRequest{RoomNumber: "999", Capacity: 10, RoomType: "classroom"})
	if e, ok := err.(*UseCaseError); !ok || e.Code != 404 {
		t.Fatalf("expected 404 for unknown room, got %v", err)
	}
}

func TestRoomDelete(t *testing.T) {
	roomRepo := &fakeRoomRepo{rooms: []entities.Room{{RoomNumber: "201"}}}
	u := NewRoomUsecase(roomRepo)

	if err := u.Delete("201"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(roomRepo.rooms) != 0 {
		t.Errorf("expected empty store, got %d rooms", len(roomRepo.rooms))
	}

	err := u.Delete("201")
	if e, ok := err.(*UseCaseError); !ok || e.Code != 404 {
		t.Fatalf("expected 404 for unknown room, got %v", err)
	}
}

func TestRoomDataStoreErrors(t *testing.T) {
	u := NewRoomUsecase(&fakeRoomRepo{err: errors.New("down")})

	if err := u.Create(entities.RoomRequest{RoomNumber: "201"}); err == nil {
		t.Error("expected error when the store is down")
	} else if e := err.(*UseCaseError); e.Code != 500 {
		t.Errorf("expected 500, got %d", e.Code)
	}
	if _, err := u.GetAll(); err == nil {
		t.Error("expected error when the store is down")
	}
}
