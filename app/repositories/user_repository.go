package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/entities"
)

type UserRepository interface {
	Create(user entities.SignupRequest, hashedPassword, avatarURL string) (int, error)
	GetByEmail(email string) (entities.GetUser, string, error)
	GetByID(id int) (entities.GetUser, error)
	UpdateProfile(id int, fields map[string]any, instructorFields map[string]any) error
	UpdatePassword(id int, hashedPassword string) error
	GetPasswordHash(id int) (string, error)
	Delete(id int) (int64, error)
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user row and, for instructors, the linked instructor
// row inside one transaction so a partial signup never survives.
func (r *userRepository) Create(user entities.SignupRequest, hashedPassword, avatarURL string) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int
	query := `
		INSERT INTO users (name, nickname, email, phone, department, role, student_num, password_hash, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()) RETURNING id
	`
	err = tx.QueryRow(query,
		user.Name, user.Nickname, user.Email, user.Phone, user.Department,
		user.Role, user.StudentNum, hashedPassword, avatarURL,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	if user.Role == entities.RoleInstructor {
		_, err = tx.Exec(
			`INSERT INTO instructors (user_id, instructor_id, office, faculty_rank) VALUES ($1, $2, $3, $4)`,
			id, user.InstructorID, user.Office, user.FacultyRank,
		)
		if err != nil {
			return 0, err
		}
	}
	return id, tx.Commit()
}

func (r *userRepository) GetByEmail(email string) (entities.GetUser, string, error) {
	var user entities.GetUser
	var hash string
	query := `
		SELECT u.id, u.name, u.nickname, u.email, u.phone, u.department, u.role, u.student_num,
			u.avatar_url, u.password_hash, u.created_at::text, u.updated_at::text,
			COALESCE(i.instructor_id, ''), COALESCE(i.office, ''), COALESCE(i.faculty_rank, '')
		FROM users u
		LEFT JOIN instructors i ON i.user_id = u.id
		WHERE u.email = $1
	`
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Nickname, &user.Email, &user.Phone,
		&user.Department, &user.Role, &user.StudentNum, &user.AvatarURL, &hash,
		&user.CreatedAt, &user.UpdatedAt,
		&user.InstructorID, &user.Office, &user.FacultyRank,
	)
	return user, hash, err
}

func (r *userRepository) GetByID(id int) (entities.GetUser, error) {
	var user entities.GetUser
	query := `
		SELECT u.id, u.name, u.nickname, u.email, u.phone, u.department, u.role, u.student_num,
			u.avatar_url, u.created_at::text, u.updated_at::text,
			COALESCE(i.instructor_id, ''), COALESCE(i.office, ''), COALESCE(i.faculty_rank, '')
		FROM users u
		LEFT JOIN instructors i ON i.user_id = u.id
		WHERE u.id = $1
	`
	err := r.db.QueryRow(query, id).Scan(
		&user.ID, &user.Name, &user.Nickname, &user.Email, &user.Phone,
		&user.Department, &user.Role, &user.StudentNum, &user.AvatarURL,
		&user.CreatedAt, &user.UpdatedAt,
		&user.InstructorID, &user.Office, &user.FacultyRank,
	)
	return user, err
}

// UpdateProfile applies only the changed columns, building the SET clause
// the same way the list filters are built. Both tables are written in one
// transaction so an instructor edit cannot land half-applied.
func (r *userRepository) UpdateProfile(id int, fields map[string]any, instructorFields map[string]any) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if len(fields) > 0 {
		setClauses := []string{"updated_at=NOW()"}
		args := []any{}
		argIdx := 1
		for column, value := range fields {
			setClauses = append(setClauses, fmt.Sprintf("%s=$%d", column, argIdx))
			args = append(args, value)
			argIdx++
		}
		args = append(args, id)
		query := fmt.Sprintf(`UPDATE users SET %s WHERE id=$%d`, strings.Join(setClauses, ", "), argIdx)
		if _, err := tx.Exec(query, args...); err != nil {
			return err
		}
	}

	if len(instructorFields) > 0 {
		setClauses := []string{}
		args := []any{}
		argIdx := 1
		for column, value := range instructorFields {
			setClauses = append(setClauses, fmt.Sprintf("%s=$%d", column, argIdx))
			args = append(args, value)
			argIdx++
		}
		args = append(args, id)
		query := fmt.Sprintf(`UPDATE instructors SET %s WHERE user_id=$%d`, strings.Join(setClauses, ", "), argIdx)
		if _, err := tx.Exec(query, args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *userRepository) UpdatePassword(id int, hashedPassword string) error {
	_, err := r.db.Exec(`UPDATE users SET password_hash=$1, updated_at=NOW() WHERE id=$2`, hashedPassword, id)
	return err
}

func (r *userRepository) GetPasswordHash(id int) (string, error) {
	var hash string
	err := r.db.QueryRow(`SELECT password_hash FROM users WHERE id=$1`, id).Scan(&hash)
	return hash, err
}

func (r *userRepository) Delete(id int) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1)`, email).Scan(&exists)
	return exists, err
}
