package database

import (
	"database/sql"
	"time"

	"alandalus-portal/app/models"
)

// ActivityFilters represents the store-side filtering options for activities.
type ActivityFilters struct {
	Type   string
	Status string
}

// CreateActivity adds a new activity to the database
func CreateActivity(db *sql.DB, a *models.Activity) error {
	query := `
		INSERT INTO activities (title_ar, title_en, description_ar, description_en, type, category,
			start_date, end_date, registration_deadline, location, organizer,
			max_participants, current_participants, status, is_featured, fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query,
		a.TitleAr, a.TitleEn, a.DescriptionAr, a.DescriptionEn, a.Type, a.Category,
		a.StartDate, a.EndDate, a.RegistrationDeadline, a.Location, a.Organizer,
		a.MaxParticipants, a.CurrentParticipants, a.Status, a.IsFeatured, a.Fee,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetActivities retrieves activities ordered by creation time descending.
func GetActivities(db *sql.DB, filters ActivityFilters) ([]models.Activity, error) {
	query := `
		SELECT id, title_ar, title_en, description_ar, description_en, type, category,
			start_date, end_date, registration_deadline, location, organizer,
			max_participants, current_participants, status, is_featured, fee, created_at, updated_at
		FROM activities
		WHERE ($1 = '' OR type = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, filters.Type, filters.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID, &a.TitleAr, &a.TitleEn, &a.DescriptionAr, &a.DescriptionEn, &a.Type, &a.Category,
			&a.StartDate, &a.EndDate, &a.RegistrationDeadline, &a.Location, &a.Organizer,
			&a.MaxParticipants, &a.CurrentParticipants, &a.Status, &a.IsFeatured, &a.Fee,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// GetActivityByID retrieves a single activity
func GetActivityByID(db *sql.DB, id string) (*models.Activity, error) {
	a := &models.Activity{}
	query := `
		SELECT id, title_ar, title_en, description_ar, description_en, type, category,
			start_date, end_date, registration_deadline, location, organizer,
			max_participants, current_participants, status, is_featured, fee, created_at, updated_at
		FROM activities WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&a.ID, &a.TitleAr, &a.TitleEn, &a.DescriptionAr, &a.DescriptionEn, &a.Type, &a.Category,
		&a.StartDate, &a.EndDate, &a.RegistrationDeadline, &a.Location, &a.Organizer,
		&a.MaxParticipants, &a.CurrentParticipants, &a.Status, &a.IsFeatured, &a.Fee,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateActivity performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateActivity(db *sql.DB, a *models.Activity, lastSeen time.Time) error {
	query := `
		UPDATE activities
		SET title_ar = $1, title_en = $2, description_ar = $3, description_en = $4, type = $5,
			category = $6, start_date = $7, end_date = $8, registration_deadline = $9,
			location = $10, organizer = $11, max_participants = $12, current_participants = $13,
			status = $14, is_featured = $15, fee = $16, updated_at = NOW()
		WHERE id = $17 AND updated_at = $18
	`
	res, err := db.Exec(query,
		a.TitleAr, a.TitleEn, a.DescriptionAr, a.DescriptionEn, a.Type,
		a.Category, a.StartDate, a.EndDate, a.RegistrationDeadline,
		a.Location, a.Organizer, a.MaxParticipants, a.CurrentParticipants,
		a.Status, a.IsFeatured, a.Fee, a.ID, lastSeen,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resolveMissedUpdate(db, "activities", a.ID)
	}
	return nil
}

// DeleteActivity deletes an activity by ID
func DeleteActivity(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
