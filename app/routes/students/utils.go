package students

import (
	"strings"
	"time"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
)

// CreateStudentRequest carries both the auth account fields and the profile
// fields; creation is a three-phase provisioning call (account, profile,
// role).
type CreateStudentRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	StudentNumber string `json:"student_number"`
	NameAr        string `json:"name_ar" validate:"required"`
	NameEn        string `json:"name_en"`
	Phone         string `json:"phone"`
	College       string `json:"college"`
	Department    string `json:"department"`
	Program       string `json:"program"`
	AcademicYear  int    `json:"academic_year" validate:"gte=0"`
	Semester      int    `json:"semester" validate:"omitempty,oneof=1 2"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive suspended graduated"`
}

// Sanitize trims free-text fields and fills the form defaults. The student
// number is left empty here; a missing one is generated at create time.
func (r *CreateStudentRequest) Sanitize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.StudentNumber = strings.TrimSpace(r.StudentNumber)
	r.NameAr = strings.TrimSpace(r.NameAr)
	r.NameEn = strings.TrimSpace(r.NameEn)
	r.Phone = strings.TrimSpace(r.Phone)
	r.College = strings.TrimSpace(r.College)
	r.Department = strings.TrimSpace(r.Department)
	r.Program = strings.TrimSpace(r.Program)

	if r.Semester == 0 {
		r.Semester = 1
	}
	if r.Status == "" {
		r.Status = string(models.StudentActive)
	}
	if r.FirstName == "" && r.NameEn != "" {
		parts := strings.SplitN(r.NameEn, " ", 2)
		r.FirstName = parts[0]
		if len(parts) == 2 {
			r.LastName = parts[1]
		}
	}
	if r.FirstName == "" {
		r.FirstName = r.NameAr
	}
}

// ToUser builds the auth account for the first provisioning phase.
func (r *CreateStudentRequest) ToUser() *models.User {
	return &models.User{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

// ToModel builds the profile row for the second provisioning phase.
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentNumber: r.StudentNumber,
		NameAr:        r.NameAr,
		NameEn:        r.NameEn,
		Email:         r.Email,
		Phone:         r.Phone,
		College:       r.College,
		Department:    r.Department,
		Program:       r.Program,
		AcademicYear:  r.AcademicYear,
		Semester:      r.Semester,
		Status:        models.StudentStatus(r.Status),
	}
}

// UpdateStudentRequest is the profile edit payload. UpdatedAt carries the
// caller's last-seen row stamp.
type UpdateStudentRequest struct {
	StudentNumber string    `json:"student_number" validate:"required"`
	NameAr        string    `json:"name_ar" validate:"required"`
	NameEn        string    `json:"name_en"`
	Email         string    `json:"email" validate:"omitempty,email"`
	Phone         string    `json:"phone"`
	College       string    `json:"college"`
	Department    string    `json:"department"`
	Program       string    `json:"program"`
	AcademicYear  int       `json:"academic_year" validate:"gte=0"`
	Semester      int       `json:"semester" validate:"omitempty,oneof=1 2"`
	Status        string    `json:"status" validate:"omitempty,oneof=active inactive suspended graduated"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r *UpdateStudentRequest) Sanitize() {
	r.StudentNumber = strings.TrimSpace(r.StudentNumber)
	r.NameAr = strings.TrimSpace(r.NameAr)
	r.NameEn = strings.TrimSpace(r.NameEn)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.College = strings.TrimSpace(r.College)
	r.Department = strings.TrimSpace(r.Department)
	r.Program = strings.TrimSpace(r.Program)

	if r.Semester == 0 {
		r.Semester = 1
	}
	if r.Status == "" {
		r.Status = string(models.StudentActive)
	}
}

func (r *UpdateStudentRequest) ToModel(id string) *models.Student {
	return &models.Student{
		ID:            id,
		StudentNumber: r.StudentNumber,
		NameAr:        r.NameAr,
		NameEn:        r.NameEn,
		Email:         r.Email,
		Phone:         r.Phone,
		College:       r.College,
		Department:    r.Department,
		Program:       r.Program,
		AcademicYear:  r.AcademicYear,
		Semester:      r.Semester,
		Status:        models.StudentStatus(r.Status),
	}
}

// StudentRow is a table row decorated with its display badge.
type StudentRow struct {
	models.Student
	StatusBadge models.Badge `json:"status_badge"`
}

// DecorateStudents attaches the Arabic label/color badge the table renders.
func DecorateStudents(rows []models.Student) []StudentRow {
	out := make([]StudentRow, len(rows))
	for i, s := range rows {
		out[i] = StudentRow{
			Student:     s,
			StatusBadge: models.StudentStatusBadge(string(s.Status)),
		}
	}
	return out
}

// FilterStudents applies the table-view predicate: case-insensitive
// substring search over name/number/email AND equality filters with the
// "all" sentinel.
func FilterStudents(rows []models.Student, search, status, program string) []models.Student {
	search = strings.TrimSpace(search)
	out := make([]models.Student, 0, len(rows))
	for _, s := range rows {
		if !helpers.ContainsFold(search, s.NameAr, s.NameEn, s.StudentNumber, s.Email) {
			continue
		}
		if !helpers.MatchesFilter(string(s.Status), status) {
			continue
		}
		if !helpers.MatchesFilter(s.Program, program) {
			continue
		}
		out = append(out, s)
	}
	return out
}
