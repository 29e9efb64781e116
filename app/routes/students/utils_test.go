package students

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

func sampleStudents() []models.Student {
	return []models.Student{
		{ID: "1", StudentNumber: "2026-0001", NameAr: "أحمد صالح", NameEn: "Ahmed Saleh", Program: "علوم الحاسوب", Status: models.StudentActive},
		{ID: "2", StudentNumber: "2025-0310", NameAr: "سارة علي", Email: "sara@alandalus.edu.ye", Program: "الطب", Status: models.StudentSuspended},
		{ID: "3", StudentNumber: "2022-0040", NameAr: "خالد ناجي", Program: "علوم الحاسوب", Status: models.StudentGraduated},
	}
}

func TestFilterStudentsSearchAndFilters(t *testing.T) {
	rows := sampleStudents()

	got := FilterStudents(rows, "2025-03", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterStudents(rows, "SARA@", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterStudents(rows, "", "graduated", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterStudents(rows, "", "all", "علوم الحاسوب")
	assert.Len(t, got, 2)

	got = FilterStudents(rows, "", "all", "all")
	assert.Equal(t, rows, got)
}

func TestCreateRequestDefaults(t *testing.T) {
	req := &CreateStudentRequest{
		Email:    "Sara@Alandalus.edu.ye",
		Password: "secret123",
		NameAr:   "سارة علي",
		NameEn:   "Sara Ali",
	}
	req.Sanitize()

	assert.Equal(t, "sara@alandalus.edu.ye", req.Email)
	assert.Equal(t, 1, req.Semester)
	assert.Equal(t, "active", req.Status)
	assert.Empty(t, req.StudentNumber)

	user := req.ToUser()
	assert.Equal(t, "Sara", user.FirstName)
	assert.Equal(t, "Ali", user.LastName)

	s := req.ToModel()
	assert.Equal(t, models.StudentActive, s.Status)
	assert.Equal(t, "سارة علي", s.NameAr)
}

func TestUpdateRequestRoundTrip(t *testing.T) {
	req := &UpdateStudentRequest{
		StudentNumber: "2026-0042",
		NameAr:        "خالد",
		Program:       "الهندسة",
		AcademicYear:  3,
		Semester:      2,
		Status:        "suspended",
	}
	req.Sanitize()

	s := req.ToModel("id-9")
	assert.Equal(t, "id-9", s.ID)
	assert.Equal(t, "2026-0042", s.StudentNumber)
	assert.Equal(t, models.StudentSuspended, s.Status)
	assert.Equal(t, 2, s.Semester)
}
