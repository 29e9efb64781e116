package appointments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

func TestClampDuration(t *testing.T) {
	assert.Equal(t, DefaultDuration, ClampDuration(0))
	assert.Equal(t, MinDuration, ClampDuration(5))
	assert.Equal(t, MinDuration, ClampDuration(MinDuration))
	assert.Equal(t, 90, ClampDuration(90))
	assert.Equal(t, MaxDuration, ClampDuration(MaxDuration))
	assert.Equal(t, MaxDuration, ClampDuration(500))
}

func TestSanitizeDefaultsStatusAndClampsDuration(t *testing.T) {
	req := &AppointmentRequest{Title: " مقابلة إرشاد أكاديمي ", DurationMinutes: 600}
	req.Sanitize()

	assert.Equal(t, "مقابلة إرشاد أكاديمي", req.Title)
	assert.Equal(t, "scheduled", req.Status)
	assert.Equal(t, MaxDuration, req.DurationMinutes)
}

func TestFilterAppointments(t *testing.T) {
	rows := []models.Appointment{
		{ID: "1", Title: "إرشاد أكاديمي", StaffMember: "د. سمير", Status: models.AppointmentScheduled},
		{ID: "2", Title: "Registration Review", Location: "Admissions Office", Status: models.AppointmentConfirmed},
		{ID: "3", Title: "مناقشة مشروع التخرج", StaffMember: "د. هدى", Status: models.AppointmentCancelled},
	}

	got := FilterAppointments(rows, "admissions", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterAppointments(rows, "د.", "all")
	assert.Len(t, got, 2)

	got = FilterAppointments(rows, "", "cancelled")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterAppointments(rows, "", "all")
	assert.Equal(t, rows, got)
}
