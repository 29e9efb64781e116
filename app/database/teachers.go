package database

import (
	"database/sql"
	"time"

	"alandalus-portal/app/models"
)

// TeacherFilters represents the store-side filtering options for teachers.
type TeacherFilters struct {
	DepartmentID    string
	Position        string
	IncludeInactive bool
}

// InsertTeacherProfile writes the profile row for an already-created auth
// account. Account creation and profile insertion are separate phases; see
// services.Provisioner.
func InsertTeacherProfile(db *sql.DB, t *models.Teacher) error {
	query := `
		INSERT INTO teachers (user_id, name_ar, name_en, email, phone, department_id, position,
			specialization, qualifications, office_location, office_hours, bio,
			profile_image_url, cv_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query,
		t.UserID, t.NameAr, t.NameEn, t.Email, t.Phone, t.DepartmentID, t.Position,
		t.Specialization, t.Qualifications, t.OfficeLocation, t.OfficeHours, t.Bio,
		t.ProfileImage, t.CVURL,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// GetTeachers retrieves teacher profiles ordered by creation time descending.
// Deactivated profiles are excluded unless IncludeInactive is set.
func GetTeachers(db *sql.DB, filters TeacherFilters) ([]models.Teacher, error) {
	query := `
		SELECT t.id, t.user_id, t.name_ar, t.name_en, t.email, t.phone, t.department_id, t.position,
			t.specialization, t.qualifications, t.office_location, t.office_hours, t.bio,
			t.profile_image_url, t.cv_url, t.is_active, t.created_at, t.updated_at,
			d.id, d.name_ar, d.name_en
		FROM teachers t
		LEFT JOIN departments d ON d.id = t.department_id
		WHERE ($1 = '' OR t.department_id::text = $1)
			AND ($2 = '' OR t.position = $2)
			AND ($3 OR t.is_active)
		ORDER BY t.created_at DESC
	`
	rows, err := db.Query(query, filters.DepartmentID, filters.Position, filters.IncludeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var t models.Teacher
		var phone sql.NullString
		var deptID, deptAr, deptEn sql.NullString
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.NameAr, &t.NameEn, &t.Email, &phone, &t.DepartmentID, &t.Position,
			&t.Specialization, &t.Qualifications, &t.OfficeLocation, &t.OfficeHours, &t.Bio,
			&t.ProfileImage, &t.CVURL, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
			&deptID, &deptAr, &deptEn,
		); err != nil {
			return nil, err
		}
		t.Phone = phone.String
		if deptID.Valid {
			t.Department = &models.Department{ID: deptID.String, NameAr: deptAr.String, NameEn: deptEn.String}
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetTeacherByID retrieves a single teacher profile, active or not.
func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	t := &models.Teacher{}
	var phone sql.NullString
	query := `
		SELECT id, user_id, name_ar, name_en, email, phone, department_id, position,
			specialization, qualifications, office_location, office_hours, bio,
			profile_image_url, cv_url, is_active, created_at, updated_at
		FROM teachers WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&t.ID, &t.UserID, &t.NameAr, &t.NameEn, &t.Email, &phone, &t.DepartmentID, &t.Position,
		&t.Specialization, &t.Qualifications, &t.OfficeLocation, &t.OfficeHours, &t.Bio,
		&t.ProfileImage, &t.CVURL, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Phone = phone.String
	return t, nil
}

// UpdateTeacher performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateTeacher(db *sql.DB, t *models.Teacher, lastSeen time.Time) error {
	query := `
		UPDATE teachers
		SET name_ar = $1, name_en = $2, email = $3, phone = $4, department_id = $5, position = $6,
			specialization = $7, qualifications = $8, office_location = $9, office_hours = $10,
			bio = $11, profile_image_url = $12, cv_url = $13, updated_at = NOW()
		WHERE id = $14 AND updated_at = $15
	`
	res, err := db.Exec(query,
		t.NameAr, t.NameEn, t.Email, t.Phone, t.DepartmentID, t.Position,
		t.Specialization, t.Qualifications, t.OfficeLocation, t.OfficeHours,
		t.Bio, t.ProfileImage, t.CVURL, t.ID, lastSeen,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resolveMissedUpdate(db, "teachers", t.ID)
	}
	return nil
}

// SetTeacherFiles stores uploaded profile image / CV URLs. Empty arguments
// leave the stored value unchanged.
func SetTeacherFiles(db *sql.DB, id, imageURL, cvURL string) error {
	query := `
		UPDATE teachers
		SET profile_image_url = COALESCE(NULLIF($1, ''), profile_image_url),
			cv_url = COALESCE(NULLIF($2, ''), cv_url),
			updated_at = NOW()
		WHERE id = $3
	`
	res, err := db.Exec(query, imageURL, cvURL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateTeacher soft-deletes a teacher profile: the row is kept with
// is_active false and the auth account is deactivated alongside it.
func DeactivateTeacher(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID string
	err = tx.QueryRow(`UPDATE teachers SET is_active = false, updated_at = NOW() WHERE id = $1 RETURNING user_id`, id).Scan(&userID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1`, userID); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteTeacherProfile hard-deletes a profile row. Only used as provisioning
// compensation; portal deletion goes through DeactivateTeacher.
func DeleteTeacherProfile(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, id)
	return err
}
