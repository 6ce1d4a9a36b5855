package usecases

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/middleware"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/utils"
)

type UserUsecase interface {
	Signup(req entities.SignupRequest) (int, error)
	Login(email, password string) (accessToken, refreshToken string, userID int, err error)
	GetProfile(id int) (entities.GetUser, error)
	UpdateUser(id int, input entities.UpdateUser, baseURL string) (entities.GetUser, error)
	ChangePassword(id int, oldPassword, newPassword string) error
	AdminResetPassword(callerRole string, targetID int, newPassword string) error
	AdminDeleteUser(callerRole string, targetID int) error
	PasswordReset(email string) (string, error)
	PasswordResetConfirm(token, newPassword, confirmPassword string) error
}

type userUsecase struct {
	userRepo         repositories.UserRepository
	defaultAvatarURL string
}

func NewUserUsecase(userRepo repositories.UserRepository, defaultAvatarURL string) UserUsecase {
	return &userUsecase{userRepo: userRepo, defaultAvatarURL: defaultAvatarURL}
}

// Signup creates the account. Role-specific identifiers are required for
// the matching role and rejected otherwise; instructors get their linked
// record in the same write.
func (u *userUsecase) Signup(req entities.SignupRequest) (int, error) {
	switch req.Role {
	case entities.RoleStudent:
		if req.StudentNum == "" {
			return 0, NewValidationError("student_num is required for students")
		}
	case entities.RoleInstructor:
		if req.InstructorID == "" {
			return 0, NewValidationError("instructor_id is required for instructors")
		}
	}

	if !isValidPassword(req.Password) {
		return 0, NewValidationError("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}

	taken, err := u.userRepo.EmailExists(req.Email)
	if err != nil {
		log.Printf("signup: email check failed: %v", err)
		return 0, NewDataStoreError("internal server error")
	}
	if taken {
		return 0, NewConflictError("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, NewUpstreamError("internal server error")
	}

	id, err := u.userRepo.Create(req, string(hashedPassword), u.defaultAvatarURL)
	if err != nil {
		log.Printf("signup: insert failed: %v", err)
		return 0, NewDataStoreError("internal server error")
	}
	return id, nil
}

func (u *userUsecase) Login(email, password string) (string, string, int, error) {
	user, storedHash, err := u.userRepo.GetByEmail(email)
	if err != nil {
		// Samarkan error database; caller only ever learns invalid credentials.
		return "", "", 0, &UseCaseError{Code: 401, Message: "invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return "", "", 0, &UseCaseError{Code: 401, Message: "invalid credentials"}
	}

	accessToken, err := middleware.GenerateToken(user.ID, user.Role, 15*time.Minute)
	if err != nil {
		return "", "", 0, NewUpstreamError("internal server error")
	}
	refreshToken, err := middleware.GenerateToken(user.ID, user.Role, 7*24*time.Hour)
	if err != nil {
		return "", "", 0, NewUpstreamError("internal server error")
	}
	return accessToken, refreshToken, user.ID, nil
}

func (u *userUsecase) GetProfile(id int) (entities.GetUser, error) {
	user, err := u.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, NewNotFoundError("user not found")
		}
		log.Printf("profile: query failed: %v", err)
		return user, NewDataStoreError("internal server error")
	}
	if user.AvatarURL == "" {
		user.AvatarURL = u.defaultAvatarURL
	}
	return user, nil
}

// UpdateUser diffs the input against the stored record and writes only the
// changed columns. An edit that changes nothing is rejected. Instructor
// fields are only considered for instructors.
func (u *userUsecase) UpdateUser(id int, input entities.UpdateUser, baseURL string) (entities.GetUser, error) {
	current, err := u.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return current, NewNotFoundError("user not found")
		}
		log.Printf("user update: query failed: %v", err)
		return current, NewDataStoreError("internal server error")
	}

	fields := map[string]any{}
	if input.Name != "" && input.Name != current.Name {
		fields["name"] = input.Name
	}
	if input.Nickname != "" && input.Nickname != current.Nickname {
		fields["nickname"] = input.Nickname
	}
	if input.Email != "" && input.Email != current.Email {
		taken, err := u.userRepo.EmailExists(input.Email)
		if err != nil {
			log.Printf("user update: email check failed: %v", err)
			return current, NewDataStoreError("internal server error")
		}
		if taken {
			return current, NewConflictError("email already registered")
		}
		fields["email"] = input.Email
	}
	if input.Phone != "" && input.Phone != current.Phone {
		fields["phone"] = input.Phone
	}
	if input.Department != "" && input.Department != current.Department {
		fields["department"] = input.Department
	}
	if input.StudentNum != "" && input.StudentNum != current.StudentNum {
		fields["student_num"] = input.StudentNum
	}
	if input.AvatarURL != "" && input.AvatarURL != current.AvatarURL {
		movedURL, err := utils.ProcessImageMove(current.AvatarURL, input.AvatarURL, baseURL, "users")
		if err != nil {
			return current, NewUpstreamError("failed to store profile image")
		}
		fields["avatar_url"] = movedURL
	}

	instructorFields := map[string]any{}
	if current.Role == entities.RoleInstructor {
		if input.InstructorID != "" && input.InstructorID != current.InstructorID {
			instructorFields["instructor_id"] = input.InstructorID
		}
		if input.Office != "" && input.Office != current.Office {
			instructorFields["office"] = input.Office
		}
		if input.FacultyRank != "" && input.FacultyRank != current.FacultyRank {
			instructorFields["faculty_rank"] = input.FacultyRank
		}
	}

	if len(fields) == 0 && len(instructorFields) == 0 {
		return current, NewValidationError("no fields changed")
	}

	if err := u.userRepo.UpdateProfile(id, fields, instructorFields); err != nil {
		log.Printf("user update: write failed: %v", err)
		return current, NewDataStoreError("internal server error")
	}
	updated, err := u.userRepo.GetByID(id)
	if err != nil {
		log.Printf("user update: reread failed: %v", err)
		return current, NewDataStoreError("internal server error")
	}
	return updated, nil
}

func (u *userUsecase) ChangePassword(id int, oldPassword, newPassword string) error {
	storedHash, err := u.userRepo.GetPasswordHash(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewNotFoundError("user not found")
		}
		log.Printf("password change: query failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(oldPassword)); err != nil {
		return NewAuthorizationError("old password is incorrect")
	}
	if !isValidPassword(newPassword) {
		return NewValidationError("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewUpstreamError("internal server error")
	}
	if err := u.userRepo.UpdatePassword(id, string(hashed)); err != nil {
		log.Printf("password change: write failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	return nil
}

func (u *userUsecase) AdminResetPassword(callerRole string, targetID int, newPassword string) error {
	if callerRole != entities.RoleAdmin {
		return NewAuthorizationError("admin role required")
	}
	if !isValidPassword(newPassword) {
		return NewValidationError("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	if _, err := u.userRepo.GetByID(targetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewNotFoundError("user not found")
		}
		log.Printf("admin reset: query failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewUpstreamError("internal server error")
	}
	if err := u.userRepo.UpdatePassword(targetID, string(hashed)); err != nil {
		log.Printf("admin reset: write failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	return nil
}

func (u *userUsecase) AdminDeleteUser(callerRole string, targetID int) error {
	if callerRole != entities.RoleAdmin {
		return NewAuthorizationError("admin role required")
	}
	rowsAffected, err := u.userRepo.Delete(targetID)
	if err != nil {
		log.Printf("user delete: delete failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	if rowsAffected == 0 {
		return NewNotFoundError("user not found")
	}
	return nil
}

// PasswordReset issues a short-lived token and mails a reset link. The
// token doubles as the :id segment of the confirmation endpoint.
func (u *userUsecase) PasswordReset(email string) (string, error) {
	user, _, err := u.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", NewNotFoundError("email not found")
		}
		log.Printf("password reset: query failed: %v", err)
		return "", NewDataStoreError("internal server error")
	}

	resetToken, err := middleware.GenerateToken(user.ID, user.Role, 15*time.Minute)
	if err != nil {
		return "", NewUpstreamError("internal server error")
	}
	if err := utils.SendResetEmail(email, resetToken); err != nil {
		log.Printf("password reset: email send failed: %v", err)
		return "", NewUpstreamError("failed to send reset email")
	}
	return resetToken, nil
}

func (u *userUsecase) PasswordResetConfirm(token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return NewValidationError("passwords do not match")
	}
	if !isValidPassword(newPassword) {
		return NewValidationError("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	userID, _, err := middleware.ParseToken(token)
	if err != nil {
		return NewAuthorizationError("invalid or expired reset token")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewUpstreamError("internal server error")
	}
	if err := u.userRepo.UpdatePassword(userID, string(hashed)); err != nil {
		log.Printf("password reset confirm: write failed: %v", err)
		return NewDataStoreError("internal server error")
	}
	return nil
}

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func isValidPassword(password string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case 'A' <= char && char <= 'Z':
			hasUpper = true
		case 'a' <= char && char <= 'z':
			hasLower = true
		case '0' <= char && char <= '9':
			hasNumber = true
		case (char >= 33 && char <= 47) || (char >= 58 && char <= 64) || (char >= 91 && char <= 96) || (char >= 123 && char <= 126):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
