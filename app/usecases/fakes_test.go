package usecases

import (
	"database/sql"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

// In-memory repository fakes shared by the usecase tests.

type fakeRoomRepo struct {
	rooms []entities.Room
	err   error
}

func (f *fakeRoomRepo) Create(room entities.RoomRequest) error {
	if f.err != nil {
		return f.err
	}
	f.rooms = append(f.rooms, entities.Room{
		RoomNumber: room.RoomNumber,
		Capacity:   room.Capacity,
		RoomType:   room.RoomType,
		Status:     room.Status,
	})
	return nil
}

func (f *fakeRoomRepo) GetAll() ([]entities.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

func (f *fakeRoomRepo) GetByNumber(roomNumber string) (entities.Room, error) {
	if f.err != nil {
		return entities.Room{}, f.err
	}
	for _, r := range f.rooms {
		if r.RoomNumber == roomNumber {
			return r, nil
		}
	}
	return entities.Room{}, sql.ErrNoRows
}

func (f *fakeRoomRepo) Update(roomNumber string, room entities.RoomRequest) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, r := range f.rooms {
		if r.RoomNumber == roomNumber {
			f.rooms[i] = entities.Room{
				RoomNumber: room.RoomNumber,
				Capacity:   room.Capacity,
				RoomType:   room.RoomType,
				Status:     room.Status,
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRoomRepo) Delete(roomNumber string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, r := range f.rooms {
		if r.RoomNumber == roomNumber {
			f.rooms = append(f.rooms[:i], f.rooms[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRoomRepo) Exists(roomNumber string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, r := range f.rooms {
		if r.RoomNumber == roomNumber {
			return true, nil
		}
	}
	return false, nil
}

type fakeScheduleRepo struct {
	schedules []entities.ScheduledTime
	err       error
}

func (f *fakeScheduleRepo) Create(s entities.ScheduledTime) error {
	if f.err != nil {
		return f.err
	}
	f.schedules = append(f.schedules, s)
	return nil
}

func (f *fakeScheduleRepo) Delete(timeslotID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, s := range f.schedules {
		if s.TimeslotID == timeslotID {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeScheduleRepo) GetAll() ([]entities.ScheduledTime, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules, nil
}

func (f *fakeScheduleRepo) GetByRoom(roomNum string) ([]entities.ScheduledTime, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.ScheduledTime
	for _, s := range f.schedules {
		if s.RoomNum == roomNum {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeReservationRepo struct {
	reservations map[string]entities.Reservation
	err          error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: map[string]entities.Reservation{}}
}

func (f *fakeReservationRepo) Create(res entities.Reservation) error {
	if f.err != nil {
		return f.err
	}
	f.reservations[res.ReservationID] = res
	return nil
}

func (f *fakeReservationRepo) GetByID(id string) (entities.Reservation, error) {
	if f.err != nil {
		return entities.Reservation{}, f.err
	}
	res, ok := f.reservations[id]
	if !ok {
		return entities.Reservation{}, sql.ErrNoRows
	}
	return res, nil
}

func (f *fakeReservationRepo) UpdateStatus(id, status, adminNotes string) error {
	if f.err != nil {
		return f.err
	}
	res := f.reservations[id]
	res.Status = status
	res.AdminNotes = adminNotes
	f.reservations[id] = res
	return nil
}

func (f *fakeReservationRepo) Delete(id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.reservations[id]; !ok {
		return 0, nil
	}
	delete(f.reservations, id)
	return 1, nil
}

func (f *fakeReservationRepo) ListByUser(userID int) ([]entities.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.Reservation
	for _, res := range f.reservations {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByStatus(status string) ([]entities.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.Reservation
	for _, res := range f.reservations {
		if res.Status == status {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) CountOverlapping(roomNum, date, startTime, endTime string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, res := range f.reservations {
		if res.RoomNum == roomNum && res.Date == date && res.Status == entities.StatusConfirmed &&
			res.StartTime < endTime && res.EndTime > startTime {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users  map[int]entities.GetUser
	hashes map[int]string
	nextID int
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]entities.GetUser{}, hashes: map[int]string{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user entities.SignupRequest, hashedPassword, avatarURL string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	id := f.nextID
	f.nextID++
	f.users[id] = entities.GetUser{
		ID:           id,
		Name:         user.Name,
		Nickname:     user.Nickname,
		Email:        user.Email,
		Phone:        user.Phone,
		Department:   user.Department,
		Role:         user.Role,
		StudentNum:   user.StudentNum,
		AvatarURL:    avatarURL,
		InstructorID: user.InstructorID,
		Office:       user.Office,
		FacultyRank:  user.FacultyRank,
	}
	f.hashes[id] = hashedPassword
	return id, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (entities.GetUser, string, error) {
	if f.err != nil {
		return entities.GetUser{}, "", f.err
	}
	for id, u := range f.users {
		if u.Email == email {
			return u, f.hashes[id], nil
		}
	}
	return entities.GetUser{}, "", sql.ErrNoRows
}

func (f *fakeUserRepo) GetByID(id int) (entities.GetUser, error) {
	if f.err != nil {
		return entities.GetUser{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return entities.GetUser{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateProfile(id int, fields map[string]any, instructorFields map[string]any) error {
	if f.err != nil {
		return f.err
	}
	u := f.users[id]
	for column, value := range fields {
		s, _ := value.(string)
		switch column {
		case "name":
			u.Name = s
		case "nickname":
			u.Nickname = s
		case "email":
			u.Email = s
		case "phone":
			u.Phone = s
		case "department":
			u.Department = s
		case "student_num":
			u.StudentNum = s
		case "avatar_url":
			u.AvatarURL = s
		}
	}
	for column, value := range instructorFields {
		s, _ := value.(string)
		switch column {
		case "instructor_id":
			u.InstructorID = s
		case "office":
			u.Office = s
		case "faculty_rank":
			u.FacultyRank = s
		}
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(id int, hashedPassword string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[id]; !ok {
		return sql.ErrNoRows
	}
	f.hashes[id] = hashedPassword
	return nil
}

func (f *fakeUserRepo) GetPasswordHash(id int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	hash, ok := f.hashes[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return hash, nil
}

func (f *fakeUserRepo) Delete(id int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	delete(f.hashes, id)
	return 1, nil
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
