package database

import (
	"database/sql"
	"time"

	"alandalus-portal/app/models"
)

// AppointmentFilters represents the store-side filtering options for
// appointments.
type AppointmentFilters struct {
	Status string
}

// CreateAppointment adds a new appointment to the database
func CreateAppointment(db *sql.DB, a *models.Appointment) error {
	query := `
		INSERT INTO appointments (title, type, scheduled_at, duration_minutes, location,
			staff_member, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query,
		a.Title, a.Type, a.ScheduledAt, a.DurationMinutes, a.Location,
		a.StaffMember, a.Status, a.Notes,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetAppointments retrieves appointments ordered by creation time descending.
func GetAppointments(db *sql.DB, filters AppointmentFilters) ([]models.Appointment, error) {
	query := `
		SELECT id, title, type, scheduled_at, duration_minutes, location,
			staff_member, status, notes, created_at, updated_at
		FROM appointments
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, filters.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Type, &a.ScheduledAt, &a.DurationMinutes, &a.Location,
			&a.StaffMember, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// GetAppointmentByID retrieves a single appointment
func GetAppointmentByID(db *sql.DB, id string) (*models.Appointment, error) {
	a := &models.Appointment{}
	query := `
		SELECT id, title, type, scheduled_at, duration_minutes, location,
			staff_member, status, notes, created_at, updated_at
		FROM appointments WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&a.ID, &a.Title, &a.Type, &a.ScheduledAt, &a.DurationMinutes, &a.Location,
		&a.StaffMember, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAppointment performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateAppointment(db *sql.DB, a *models.Appointment, lastSeen time.Time) error {
	query := `
		UPDATE appointments
		SET title = $1, type = $2, scheduled_at = $3, duration_minutes = $4, location = $5,
			staff_member = $6, status = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND updated_at = $10
	`
	res, err := db.Exec(query,
		a.Title, a.Type, a.ScheduledAt, a.DurationMinutes, a.Location,
		a.StaffMember, a.Status, a.Notes, a.ID, lastSeen,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resolveMissedUpdate(db, "appointments", a.ID)
	}
	return nil
}

// DeleteAppointment deletes an appointment by ID
func DeleteAppointment(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
