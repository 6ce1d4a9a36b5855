package usecases

import (
	"fmt"
	"sort"
	"time"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
)

// Rooms are bookable between 07:00 and 21:00; anything shorter than
// 30 minutes is not worth offering as a slot.
const (
	operatingStartMinute = 7 * 60
	operatingEndMinute   = 21 * 60
	minSlotMinutes       = 30
)

type AvailabilityUsecase interface {
	GetAvailableRooms(date string) ([]entities.RoomAvailability, error)
}

type availabilityUsecase struct {
	roomRepo     repositories.RoomRepository
	scheduleRepo repositories.ScheduleRepository
}

func NewAvailabilityUsecase(roomRepo repositories.RoomRepository, scheduleRepo repositories.ScheduleRepository) AvailabilityUsecase {
	return &availabilityUsecase{roomRepo: roomRepo, scheduleRepo: scheduleRepo}
}

// GetAvailableRooms computes, for every room, the free windows on the given
// date: the operating day minus every schedule that applies to that date.
func (u *availabilityUsecase) GetAvailableRooms(date string) ([]entities.RoomAvailability, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, NewValidationError("invalid date format, use YYYY-MM-DD")
	}

	rooms, err := u.roomRepo.GetAll()
	if err != nil {
		return nil, NewDataStoreError("room data unavailable")
	}
	schedules, err := u.scheduleRepo.GetAll()
	if err != nil {
		return nil, NewDataStoreError("schedule data unavailable")
	}

	result := make([]entities.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		var applicable []entities.ScheduledTime
		for _, s := range schedules {
			if s.RoomNum == room.RoomNumber && scheduleAppliesOn(s, day) {
				applicable = append(applicable, s)
			}
		}
		slots, err := FreeSlots(applicable)
		if err != nil {
			return nil, err
		}
		result = append(result, entities.RoomAvailability{Room: room, FreeSlots: slots})
	}
	return result, nil
}

// scheduleAppliesOn reports whether a schedule occupies the room on the
// given date: recurring entries match on weekday, one-off entries on the
// exact date.
func scheduleAppliesOn(s entities.ScheduledTime, day time.Time) bool {
	if s.Regular {
		code := day.Weekday().String()[:3]
		for _, d := range s.Days {
			if d == code {
				return true
			}
		}
		return false
	}
	return s.Date == day.Format("2006-01-02")
}

// FreeSlots subtracts the given occupied blocks from the operating day and
// returns the remaining windows of at least 30 minutes, ordered by start.
// Overlapping blocks are absorbed by the sweep; a block fully contained in
// an earlier one contributes nothing.
func FreeSlots(occupied []entities.ScheduledTime) ([]entities.FreeSlot, error) {
	type span struct {
		start, end int
	}
	spans := make([]span, 0, len(occupied))
	for _, s := range occupied {
		start, err := ParseClock(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(s.EndTime)
		if err != nil {
			return nil, err
		}
		// Clamp into the operating day; blocks entirely outside it are
		// irrelevant to the sweep.
		if end <= operatingStartMinute || start >= operatingEndMinute {
			continue
		}
		spans = append(spans, span{start: max(start, operatingStartMinute), end: min(end, operatingEndMinute)})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	slots := []entities.FreeSlot{}
	current := operatingStartMinute
	for _, sp := range spans {
		if current < sp.start && sp.start-current >= minSlotMinutes {
			slots = append(slots, entities.FreeSlot{
				StartTime: FormatClock(current),
				EndTime:   FormatClock(sp.start),
			})
		}
		if sp.end > current {
			current = sp.end
		}
	}
	if current < operatingEndMinute && operatingEndMinute-current >= minSlotMinutes {
		slots = append(slots, entities.FreeSlot{
			StartTime: FormatClock(current),
			EndTime:   FormatClock(operatingEndMinute),
		})
	}
	return slots, nil
}

// ParseClock converts a strict HH:MM string to minutes since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("invalid time %q, use HH:MM", value))
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
