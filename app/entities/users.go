package entities

import jwt "github.com/golang-jwt/jwt/v5"

const (
	RoleStudent    = "Student"
	RoleInstructor = "Instructor"
	RoleAdmin      = "Admin"
)

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Nickname   string `json:"nickname"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=Student Instructor Admin"`
	// password harus ada angka, huruf besar, huruf kecil, dan simbol
	Password string `json:"password" validate:"required"`

	// Role-specific identifiers.
	StudentNum   string `json:"student_num"`
	InstructorID string `json:"instructor_id"`
	Office       string `json:"office"`
	FacultyRank  string `json:"faculty_rank"`
}

// GetUser is the profile payload. Instructor fields are only populated
// when Role is Instructor.
type GetUser struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
	StudentNum string `json:"student_num,omitempty"`
	AvatarURL  string `json:"imageURL"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`

	InstructorID string `json:"instructor_id,omitempty"`
	Office       string `json:"office,omitempty"`
	FacultyRank  string `json:"faculty_rank,omitempty"`
}

// UpdateUser carries a partial profile edit. Empty fields are left
// untouched; the usecase computes the diff against the stored record.
type UpdateUser struct {
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	StudentNum string `json:"student_num"`
	AvatarURL  string `json:"imageURL" validate:"omitempty,url"`

	InstructorID string `json:"instructor_id"`
	Office       string `json:"office"`
	FacultyRank  string `json:"faculty_rank"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type AdminResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required"`
}

type ResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordConfirmReset struct {
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type Claims struct {
	UserID int    `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
