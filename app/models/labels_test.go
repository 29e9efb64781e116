package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeLookupsAreTotal(t *testing.T) {
	lookups := map[string]func(string) Badge{
		"service status":     ServiceStatusBadge,
		"service category":   ServiceCategoryBadge,
		"club status":        ClubStatusBadge,
		"club category":      ClubCategoryBadge,
		"activity type":      ActivityTypeBadge,
		"activity status":    ActivityStatusBadge,
		"appointment status": AppointmentStatusBadge,
		"payment status":     PaymentStatusBadge,
		"payment type":       PaymentTypeBadge,
		"teacher position":   TeacherPositionBadge,
		"student status":     StudentStatusBadge,
	}

	inputs := []string{"", "bogus", "ACTIVE", "deleted", "  ", "نشط"}
	for name, lookup := range lookups {
		for _, in := range inputs {
			b := lookup(in)
			assert.Equal(t, UnknownBadge, b, "%s lookup for %q should fall back", name, in)
			assert.NotEmpty(t, b.Label)
			assert.NotEmpty(t, b.Color)
		}
	}
}

func TestKnownBadges(t *testing.T) {
	assert.Equal(t, Badge{Label: "نشطة", Color: "green"}, ServiceStatusBadge("active"))
	assert.Equal(t, Badge{Label: "قيد الصيانة", Color: "amber"}, ServiceStatusBadge("maintenance"))
	assert.Equal(t, Badge{Label: "فتح باب الانضمام", Color: "blue"}, ClubStatusBadge("recruiting"))
	assert.Equal(t, Badge{Label: "ملغاة", Color: "red"}, ActivityStatusBadge("cancelled"))
	assert.Equal(t, Badge{Label: "معاد جدولته", Color: "amber"}, AppointmentStatusBadge("rescheduled"))
	assert.Equal(t, Badge{Label: "متأخرة", Color: "red"}, PaymentStatusBadge("overdue"))
	assert.Equal(t, Badge{Label: "معيد", Color: "amber"}, TeacherPositionBadge("teaching_assistant"))
	assert.Equal(t, Badge{Label: "متخرج", Color: "blue"}, StudentStatusBadge("graduated"))
}

func TestEveryEnumValueHasABadge(t *testing.T) {
	for _, s := range []ServiceStatus{ServiceActive, ServiceInactive, ServiceMaintenance} {
		assert.NotEqual(t, UnknownBadge, ServiceStatusBadge(string(s)))
	}
	for _, c := range []ClubCategory{ClubCultural, ClubSports, ClubScientific, ClubSocial, ClubArtistic, ClubTechnical, ClubReligious, ClubVoluntary} {
		assert.NotEqual(t, UnknownBadge, ClubCategoryBadge(string(c)))
	}
	for _, s := range []ActivityStatus{ActivityPlanned, ActivityOpen, ActivityClosed, ActivityOngoing, ActivityCompleted, ActivityCancelled} {
		assert.NotEqual(t, UnknownBadge, ActivityStatusBadge(string(s)))
	}
	for _, s := range []AppointmentStatus{AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled, AppointmentRescheduled} {
		assert.NotEqual(t, UnknownBadge, AppointmentStatusBadge(string(s)))
	}
	for _, p := range []TeacherPosition{Professor, AssociateProfessor, AssistantProfessor, Lecturer, AssistantLecturer, TeachingAssistant} {
		assert.NotEqual(t, UnknownBadge, TeacherPositionBadge(string(p)))
	}
	for _, s := range []StudentStatus{StudentActive, StudentInactive, StudentSuspended, StudentGraduated} {
		assert.NotEqual(t, UnknownBadge, StudentStatusBadge(string(s)))
	}
}
