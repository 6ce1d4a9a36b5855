package usecases

import (
	"errors"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/middleware"
)

const defaultAvatar = "http://localhost:8080/assets/default/avatar.png"

func TestMain(m *testing.M) {
	os.Setenv("jwt_secret", "test-secret")
	os.Exit(m.Run())
}

func validSignup() entities.SignupRequest {
	return entities.SignupRequest{
		Name:       "Juan dela Cruz",
		Nickname:   "Juan",
		Email:      "juan@up.edu.ph",
		Phone:      "09171234567",
		Department: "DPSM",
		Role:       entities.RoleStudent,
		StudentNum: "2021-00001",
		Password:   "Str0ng!pass",
	}
}

func TestSignup(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)

	id, err := u.Signup(validSignup())
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
	stored := userRepo.users[id]
	if stored.AvatarURL != defaultAvatar {
		t.Errorf("expected default avatar, got %q", stored.AvatarURL)
	}
	if userRepo.hashes[id] == "Str0ng!pass" {
		t.Error("password must be stored hashed")
	}

	// Same email again.
	_, err = u.Signup(validSignup())
	if e, ok := err.(*UseCaseError); !ok || e.Code != 409 {
		t.Fatalf("expected 409 for duplicate email, got %v", err)
	}
}

func TestSignup_Validation(t *testing.T) {
	u := NewUserUsecase(newFakeUserRepo(), defaultAvatar)

	tests := []struct {
		name   string
		mutate func(*entities.SignupRequest)
	}{
		{"student without student_num", func(r *entities.SignupRequest) { r.StudentNum = "" }},
		{"instructor without instructor_id", func(r *entities.SignupRequest) {
			r.Role = entities.RoleInstructor
			r.StudentNum = ""
		}},
		{"password without uppercase", func(r *entities.SignupRequest) { r.Password = "weak!pass1" }},
		{"password without number", func(r *entities.SignupRequest) { r.Password = "Weak!passwd" }},
		{"password without special character", func(r *entities.SignupRequest) { r.Password = "Weakpass1" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)
			_, err := u.Signup(req)
			if e, ok := err.(*UseCaseError); !ok || e.Code != 400 {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)

	id, err := u.Signup(validSignup())
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	access, refresh, userID, err := u.Login("juan@up.edu.ph", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if userID != id {
		t.Errorf("expected user id %d, got %d", id, userID)
	}
	if access == "" || refresh == "" {
		t.Error("expected both tokens to be issued")
	}

	tokenID, role, err := middleware.ParseToken(access)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if tokenID != id || role != entities.RoleStudent {
		t.Errorf("unexpected claims: id=%d role=%q", tokenID, role)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)
	if _, err := u.Signup(validSignup()); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	for _, tt := range []struct {
		name, email, password string
	}{
		{"unknown email", "nobody@up.edu.ph", "Str0ng!pass"},
		{"wrong password", "juan@up.edu.ph", "Wr0ng!pass"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := u.Login(tt.email, tt.password)
			e, ok := err.(*UseCaseError)
			if !ok {
				t.Fatalf("expected *UseCaseError, got %v", err)
			}
			if e.Code != 401 || e.Message != "invalid credentials" {
				t.Errorf("unexpected error: %+v", e)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)

	id, _ := u.Signup(validSignup())
	userRepo.users[id] = func(u entities.GetUser) entities.GetUser { u.AvatarURL = ""; return u }(userRepo.users[id])

	user, err := u.GetProfile(id)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if user.AvatarURL != defaultAvatar {
		t.Errorf("expected default avatar fill-in, got %q", user.AvatarURL)
	}

	_, err = u.GetProfile(999)
	if e, ok := err.(*UseCaseError); !ok || e.Code != 404 {
		t.Fatalf("expected 404 for unknown user, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)
	id, _ := u.Signup(validSignup())

	updated, err := u.UpdateUser(id, entities.UpdateUser{Nickname: "JDC", Phone: "09998887777"}, "http://localhost:8080")
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Nickname != "JDC" || updated.Phone != "09998887777" {
		t.Errorf("unexpected updated profile: %+v", updated)
	}
	if updated.Name != "Juan dela Cruz" {
		t.Errorf("untouched fields must survive, got name %q", updated.Name)
	}

	// Submitting the current values changes nothing.
	_, err = u.UpdateUser(id, entities.UpdateUser{Nickname: "JDC"}, "http://localhost:8080")
	if e, ok := err.(*UseCaseError); !ok || e.Code != 400 {
		t.Fatalf("expected 400 for an empty diff, got %v", err)
	}
}

// failingReadUserRepo lets the first profile read succeed and fails the
// re-read after the write.
type failingReadUserRepo struct {
	*fakeUserRepo
	reads int
}

func (f *failingReadUserRepo) GetByID(id int) (entities.GetUser, error) {
	f.reads++
	if f.reads > 1 {
		return entities.GetUser{}, errors.New("down")
	}
	return f.fakeUserRepo.GetByID(id)
}

func TestUpdateUser_RereadFailure(t *testing.T) {
	userRepo := newFakeUserRepo()
	seed := NewUserUsecase(userRepo, defaultAvatar)
	id, err := seed.Signup(validSignup())
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	u := NewUserUsecase(&failingReadUserRepo{fakeUserRepo: userRepo}, defaultAvatar)
	_, err = u.UpdateUser(id, entities.UpdateUser{Nickname: "JDC"}, "http://localhost:8080")
	if e, ok := err.(*UseCaseError); !ok || e.Code != 500 {
		t.Fatalf("expected 500 when the re-read fails, got %v", err)
	}
}

func TestUpdateUser_EmailCollision(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)
	id, _ := u.Signup(validSignup())

	other := validSignup()
	other.Email = "maria@up.edu.ph"
	other.StudentNum = "2021-00002"
	if _, err := u.Signup(other); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	_, err := u.UpdateUser(id, entities.UpdateUser{Email: "maria@up.edu.ph"}, "http://localhost:8080")
	if e, ok := err.(*UseCaseError); !ok || e.Code != 409 {
		t.Fatalf("expected 409 for email collision, got %v", err)
	}
}

func TestUpdateUser_InstructorFieldsGated(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)

	// Students cannot set instructor columns; the diff stays empty.
	studentID, _ := u.Signup(validSignup())
	_, err := u.UpdateUser(studentID, entities.UpdateUser{Office: "A-201"}, "http://localhost:8080")
	if e, ok := err.(*UseCaseError); !ok || e.Code != 400 {
		t.Fatalf("expected 400 for student touching instructor fields, got %v", err)
	}

	instructor := validSignup()
	instructor.Email = "prof@up.edu.ph"
	instructor.Role = entities.RoleInstructor
	instructor.StudentNum = ""
	instructor.InstructorID = "INS-001"
	instructorID, err := u.Signup(instructor)
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	updated, err := u.UpdateUser(instructorID, entities.UpdateUser{Office: "A-201", FacultyRank: "Assistant Professor"}, "http://localhost:8080")
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Office != "A-201" || updated.FacultyRank != "Assistant Professor" {
		t.Errorf("unexpected instructor profile: %+v", updated)
	}
}

func TestChangePassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)
	id, _ := u.Signup(validSignup())

	if err := u.ChangePassword(id, "Wr0ng!pass", "N3w!passwd"); err == nil {
		t.Error("expected error for wrong old password")
	} else if e := err.(*UseCaseError); e.Code != 403 {
		t.Errorf("expected 403, got %d", e.Code)
	}

	if err := u.ChangePassword(id, "Str0ng!pass", "weak"); err == nil {
		t.Error("expected error for weak new password")
	}

	if err := u.ChangePassword(id, "Str0ng!pass", "N3w!passwd"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRepo.hashes[id]), []byte("N3w!passwd")); err != nil {
		t.Error("stored hash does not match the new password")
	}
}

func TestAdminResetPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)
	id, _ := u.Signup(validSignup())

	if err := u.AdminResetPassword(entities.RoleStudent, id, "N3w!passwd"); err == nil {
		t.Error("expected error for non-admin caller")
	} else if e := err.(*UseCaseError); e.Code != 403 {
		t.Errorf("expected 403, got %d", e.Code)
	}

	if err := u.AdminResetPassword(entities.RoleAdmin, 999, "N3w!passwd"); err == nil {
		t.Error("expected error for unknown user")
	} else if e := err.(*UseCaseError); e.Code != 404 {
		t.Errorf("expected 404, got %d", e.Code)
	}

	if err := u.AdminResetPassword(entities.RoleAdmin, id, "N3w!passwd"); err != nil {
		t.Fatalf("AdminResetPassword failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRepo.hashes[id]), []byte("N3w!passwd")); err != nil {
		t.Error("stored hash does not match the reset password")
	}
}

func TestAdminDeleteUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)
	id, _ := u.Signup(validSignup())

	if err := u.AdminDeleteUser(entities.RoleInstructor, id); err == nil {
		t.Error("expected error for non-admin caller")
	} else if e := err.(*UseCaseError); e.Code != 403 {
		t.Errorf("expected 403, got %d", e.Code)
	}

	if err := u.AdminDeleteUser(entities.RoleAdmin, id); err != nil {
		t.Fatalf("AdminDeleteUser failed: %v", err)
	}
	if err := u.AdminDeleteUser(entities.RoleAdmin, id); err == nil {
		t.Error("expected error for an already deleted user")
	} else if e := err.(*UseCaseError); e.Code != 404 {
		t.Errorf("expected 404, got %d", e.Code)
	}
}

func TestPasswordResetConfirm(t *testing.T) {
	userRepo := newFakeUserRepo()
	u := NewUserUsecase(userRepo, defaultAvatar)
	id, _ := u.Signup(validSignup())

	token, err := middleware.GenerateToken(id, entities.RoleStudent, 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if err := u.PasswordResetConfirm(token, "N3w!passwd", "Different1!"); err == nil {
		t.Error("expected error for mismatched confirmation")
	}
	if err := u.PasswordResetConfirm("not-a-token", "N3w!passwd", "N3w!passwd"); err == nil {
		t.Error("expected error for an invalid token")
	} else if e := err.(*UseCaseError); e.Code != 403 {
		t.Errorf("expected 403, got %d", e.Code)
	}

	if err := u.PasswordResetConfirm(token, "N3w!passwd", "N3w!passwd"); err != nil {
		t.Fatalf("PasswordResetConfirm failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRepo.hashes[id]), []byte("N3w!passwd")); err != nil {
		t.Error("stored hash does not match the reset password")
	}
}

func TestIsValidPassword(t *testing.T) {
	for password, want := range map[string]bool{
		"Str0ng!pass": true,
		"alllower1!":  false,
		"ALLUPPER1!":  false,
		"NoNumber!!":  false,
		"NoSpecial1a": false,
		"":            false,
	} {
		if got := isValidPassword(password); got != want {
			t.Errorf("isValidPassword(%q) = %v, want %v", password, got, want)
		}
	}
}
