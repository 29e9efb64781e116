package appointments

import (
	"strings"
	"time"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
)

// Duration bounds in minutes. Out-of-range values are clamped, not rejected.
const (
	MinDuration     = 15
	MaxDuration     = 180
	DefaultDuration = 30
)

// AppointmentRequest is the create/update payload. UpdatedAt carries the
// caller's last-seen row stamp and is only read on update.
type AppointmentRequest struct {
	Title           string    `json:"title" validate:"required"`
	Type            string    `json:"type"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	StaffMember     string    `json:"staff_member"`
	Status          string    `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled rescheduled"`
	Notes           string    `json:"notes"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Sanitize trims free-text fields, clamps the duration into its bounds and
// fills the form defaults.
func (r *AppointmentRequest) Sanitize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Type = strings.TrimSpace(r.Type)
	r.Location = strings.TrimSpace(r.Location)
	r.StaffMember = strings.TrimSpace(r.StaffMember)
	r.Notes = strings.TrimSpace(r.Notes)

	r.DurationMinutes = ClampDuration(r.DurationMinutes)
	if r.Status == "" {
		r.Status = string(models.AppointmentScheduled)
	}
}

// ClampDuration forces a duration into the allowed range; zero means the
// field was absent and takes the default.
func ClampDuration(minutes int) int {
	switch {
	case minutes == 0:
		return DefaultDuration
	case minutes < MinDuration:
		return MinDuration
	case minutes > MaxDuration:
		return MaxDuration
	}
	return minutes
}

// ToModel builds the full record for insert/update.
func (r *AppointmentRequest) ToModel(id string) *models.Appointment {
	return &models.Appointment{
		ID:              id,
		Title:           r.Title,
		Type:            r.Type,
		ScheduledAt:     r.ScheduledAt,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		StaffMember:     r.StaffMember,
		Status:          models.AppointmentStatus(r.Status),
		Notes:           r.Notes,
	}
}

// AppointmentRow is a table row decorated with its display badge.
type AppointmentRow struct {
	models.Appointment
	StatusBadge models.Badge `json:"status_badge"`
}

// DecorateAppointments attaches the Arabic label/color badge the table
// renders.
func DecorateAppointments(rows []models.Appointment) []AppointmentRow {
	out := make([]AppointmentRow, len(rows))
	for i, a := range rows {
		out[i] = AppointmentRow{
			Appointment: a,
			StatusBadge: models.AppointmentStatusBadge(string(a.Status)),
		}
	}
	return out
}

// FilterAppointments applies the table-view predicate: case-insensitive
// substring search over title/staff member/location AND a status equality
// filter with the "all" sentinel.
func FilterAppointments(rows []models.Appointment, search, status string) []models.Appointment {
	search = strings.TrimSpace(search)
	out := make([]models.Appointment, 0, len(rows))
	for _, a := range rows {
		if !helpers.ContainsFold(search, a.Title, a.StaffMember, a.Location) {
			continue
		}
		if !helpers.MatchesFilter(string(a.Status), status) {
			continue
		}
		out = append(out, a)
	}
	return out
}
