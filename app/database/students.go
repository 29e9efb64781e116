package database

import (
	"database/sql"
	"time"

	"alandalus-portal/app/models"
)

// StudentFilters represents the store-side filtering options for students.
type StudentFilters struct {
	Status  string
	Program string
}

// InsertStudentProfile writes the profile row for an already-created auth
// account. See services.Provisioner for the full three-phase sequence.
func InsertStudentProfile(db *sql.DB, s *models.Student) error {
	query := `
		INSERT INTO students (user_id, student_number, name_ar, name_en, email, phone,
			college, department, program, academic_year, semester, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query,
		s.UserID, s.StudentNumber, s.NameAr, s.NameEn, s.Email, s.Phone,
		s.College, s.Department, s.Program, s.AcademicYear, s.Semester, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// GetStudents retrieves student profiles ordered by creation time descending.
func GetStudents(db *sql.DB, filters StudentFilters) ([]models.Student, error) {
	query := `
		SELECT id, user_id, student_number, name_ar, name_en, email, phone,
			college, department, program, academic_year, semester, status, created_at, updated_at
		FROM students
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR program = $2)
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, filters.Status, filters.Program)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		var phone sql.NullString
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.StudentNumber, &s.NameAr, &s.NameEn, &s.Email, &phone,
			&s.College, &s.Department, &s.Program, &s.AcademicYear, &s.Semester, &s.Status,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		s.Phone = phone.String
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID retrieves a single student profile
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	var phone sql.NullString
	query := `
		SELECT id, user_id, student_number, name_ar, name_en, email, phone,
			college, department, program, academic_year, semester, status, created_at, updated_at
		FROM students WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.UserID, &s.StudentNumber, &s.NameAr, &s.NameEn, &s.Email, &phone,
		&s.College, &s.Department, &s.Program, &s.AcademicYear, &s.Semester, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Phone = phone.String
	return s, nil
}

// UpdateStudent performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateStudent(db *sql.DB, s *models.Student, lastSeen time.Time) error {
	query := `
		UPDATE students
		SET name_ar = $1, name_en = $2, email = $3, phone = $4, college = $5, department = $6,
			program = $7, academic_year = $8, semester = $9, status = $10, updated_at = NOW()
		WHERE id = $11 AND updated_at = $12
	`
	res, err := db.Exec(query,
		s.NameAr, s.NameEn, s.Email, s.Phone, s.College, s.Department,
		s.Program, s.AcademicYear, s.Semester, s.Status, s.ID, lastSeen,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resolveMissedUpdate(db, "students", s.ID)
	}
	return nil
}

// NextStudentNumber produces the next sequential student number for the
// given intake year, e.g. 2026-0042.
func NextStudentNumber(db *sql.DB, year int) (string, error) {
	var number string
	query := `
		SELECT $1::text || '-' || LPAD((COUNT(*) + 1)::text, 4, '0')
		FROM students WHERE student_number LIKE $1::text || '-%'
	`
	err := db.QueryRow(query, year).Scan(&number)
	return number, err
}

// DeleteStudentProfile hard-deletes a profile row. Only used as provisioning
// compensation.
func DeleteStudentProfile(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	return err
}
