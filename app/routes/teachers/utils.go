package teachers

import (
	"strings"
	"time"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
)

// CreateTeacherRequest carries both the auth account fields and the profile
// fields; creation is a two-phase provisioning call.
type CreateTeacherRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	NameAr         string `json:"name_ar" validate:"required"`
	NameEn         string `json:"name_en"`
	Phone          string `json:"phone"`
	DepartmentID   string `json:"department_id"`
	Position       string `json:"position" validate:"omitempty,oneof=professor associate_professor assistant_professor lecturer assistant_lecturer teaching_assistant"`
	Specialization string `json:"specialization"`
	Qualifications string `json:"qualifications"`
	OfficeLocation string `json:"office_location"`
	OfficeHours    string `json:"office_hours"`
	Bio            string `json:"bio"`
}

// Sanitize trims free-text fields, fills defaults and derives the account
// display name from name_en when first/last name are absent.
func (r *CreateTeacherRequest) Sanitize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.NameAr = strings.TrimSpace(r.NameAr)
	r.NameEn = strings.TrimSpace(r.NameEn)
	r.Phone = strings.TrimSpace(r.Phone)
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
	r.Specialization = strings.TrimSpace(r.Specialization)

	if r.Position == "" {
		r.Position = string(models.Lecturer)
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
func (r *CreateTeacherRequest) ToUser() *models.User {
	return &models.User{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

// ToModel builds the profile row for the second provisioning phase. An empty
// department reference is coerced to null.
func (r *CreateTeacherRequest) ToModel() *models.Teacher {
	t := &models.Teacher{
		NameAr:         r.NameAr,
		NameEn:         r.NameEn,
		Email:          r.Email,
		Phone:          r.Phone,
		Position:       models.TeacherPosition(r.Position),
		Specialization: r.Specialization,
		Qualifications: r.Qualifications,
		OfficeLocation: r.OfficeLocation,
		OfficeHours:    r.OfficeHours,
		Bio:            r.Bio,
		IsActive:       true,
	}
	if r.DepartmentID != "" {
		t.DepartmentID = &r.DepartmentID
	}
	return t
}

// UpdateTeacherRequest is the profile edit payload. UpdatedAt carries the
// caller's last-seen row stamp.
type UpdateTeacherRequest struct {
	NameAr         string    `json:"name_ar" validate:"required"`
	NameEn         string    `json:"name_en"`
	Email          string    `json:"email" validate:"omitempty,email"`
	Phone          string    `json:"phone"`
	DepartmentID   string    `json:"department_id"`
	Position       string    `json:"position" validate:"omitempty,oneof=professor associate_professor assistant_professor lecturer assistant_lecturer teaching_assistant"`
	Specialization string    `json:"specialization"`
	Qualifications string    `json:"qualifications"`
	OfficeLocation string    `json:"office_location"`
	OfficeHours    string    `json:"office_hours"`
	Bio            string    `json:"bio"`
	ProfileImage   string    `json:"profile_image_url"`
	CVURL          string    `json:"cv_url"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *UpdateTeacherRequest) Sanitize() {
	r.NameAr = strings.TrimSpace(r.NameAr)
	r.NameEn = strings.TrimSpace(r.NameEn)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
	r.Specialization = strings.TrimSpace(r.Specialization)

	if r.Position == "" {
		r.Position = string(models.Lecturer)
	}
}

func (r *UpdateTeacherRequest) ToModel(id string) *models.Teacher {
	t := &models.Teacher{
		ID:             id,
		NameAr:         r.NameAr,
		NameEn:         r.NameEn,
		Email:          r.Email,
		Phone:          r.Phone,
		Position:       models.TeacherPosition(r.Position),
		Specialization: r.Specialization,
		Qualifications: r.Qualifications,
		OfficeLocation: r.OfficeLocation,
		OfficeHours:    r.OfficeHours,
		Bio:            r.Bio,
		ProfileImage:   r.ProfileImage,
		CVURL:          r.CVURL,
	}
	if r.DepartmentID != "" {
		t.DepartmentID = &r.DepartmentID
	}
	return t
}

// TeacherRow is a table row decorated with its display badge.
type TeacherRow struct {
	models.Teacher
	PositionBadge models.Badge `json:"position_badge"`
}

// DecorateTeachers attaches the Arabic label/color badge the table renders.
func DecorateTeachers(rows []models.Teacher) []TeacherRow {
	out := make([]TeacherRow, len(rows))
	for i, t := range rows {
		out[i] = TeacherRow{
			Teacher:       t,
			PositionBadge: models.TeacherPositionBadge(string(t.Position)),
		}
	}
	return out
}

// FilterTeachers applies the table-view predicate: case-insensitive
// substring search over name/email/specialization AND equality filters with
// the "all" sentinel. The department filter matches the department ID.
func FilterTeachers(rows []models.Teacher, search, departmentID, position string) []models.Teacher {
	search = strings.TrimSpace(search)
	out := make([]models.Teacher, 0, len(rows))
	for _, t := range rows {
		if !helpers.ContainsFold(search, t.NameAr, t.NameEn, t.Email, t.Specialization) {
			continue
		}
		dept := ""
		if t.DepartmentID != nil {
			dept = *t.DepartmentID
		}
		if !helpers.MatchesFilter(dept, departmentID) {
			continue
		}
		if !helpers.MatchesFilter(string(t.Position), position) {
			continue
		}
		out = append(out, t)
	}
	return out
}
