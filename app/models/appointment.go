package models

import "time"

// Appointment represents a scheduled meeting between a student and a staff
// member.
type Appointment struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Type            string            `json:"type"`
	ScheduledAt     time.Time         `json:"scheduled_at"`
	DurationMinutes int               `json:"duration_minutes"`
	Location        string            `json:"location"`
	StaffMember     string            `json:"staff_member"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
