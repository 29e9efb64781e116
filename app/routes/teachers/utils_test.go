package teachers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

func strptr(s string) *string { return &s }

func sampleTeachers() []models.Teacher {
	return []models.Teacher{
		{ID: "1", NameAr: "د. أحمد صالح", NameEn: "Dr. Ahmed Saleh", Email: "ahmed@alandalus.edu.ye",
			DepartmentID: strptr("cs"), Position: models.Professor},
		{ID: "2", NameAr: "د. منى قاسم", NameEn: "Dr. Muna Qasem", Specialization: "Databases",
			DepartmentID: strptr("cs"), Position: models.Lecturer},
		{ID: "3", NameAr: "د. هدى ناجي", NameEn: "Dr. Huda Naji", Position: models.AssistantProfessor},
	}
}

func TestFilterTeachersSearchAndFilters(t *testing.T) {
	rows := sampleTeachers()

	got := FilterTeachers(rows, "ahmed", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Specialization is searchable.
	got = FilterTeachers(rows, "database", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterTeachers(rows, "", "cs", "all")
	assert.Len(t, got, 2)

	got = FilterTeachers(rows, "", "all", "assistant_professor")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterTeachers(rows, "", "all", "all")
	assert.Equal(t, rows, got)
}

func TestCreateRequestDerivesAccountName(t *testing.T) {
	req := &CreateTeacherRequest{
		Email:    " Ahmed@Alandalus.edu.ye ",
		Password: "secret123",
		NameAr:   "د. أحمد صالح",
		NameEn:   "Ahmed Saleh",
	}
	req.Sanitize()

	user := req.ToUser()
	assert.Equal(t, "ahmed@alandalus.edu.ye", user.Email)
	assert.Equal(t, "Ahmed", user.FirstName)
	assert.Equal(t, "Saleh", user.LastName)

	// Without an English name the Arabic one backs the account name.
	req = &CreateTeacherRequest{Email: "x@y.z", Password: "secret123", NameAr: "د. منى"}
	req.Sanitize()
	assert.Equal(t, "د. منى", req.ToUser().FirstName)
}

func TestCreateRequestCoercesDepartment(t *testing.T) {
	req := &CreateTeacherRequest{Email: "x@y.z", Password: "secret123", NameAr: "اسم"}
	req.Sanitize()
	assert.Nil(t, req.ToModel().DepartmentID)
	assert.Equal(t, models.Lecturer, req.ToModel().Position)

	req.DepartmentID = "cs"
	got := req.ToModel()
	require.NotNil(t, got.DepartmentID)
	assert.Equal(t, "cs", *got.DepartmentID)
	assert.True(t, got.IsActive)
}
