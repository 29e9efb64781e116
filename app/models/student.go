package models

import "time"

// Student represents an enrolled student profile.
type Student struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID        string        `json:"user_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	StudentNumber string        `json:"student_number" gorm:"uniqueIndex;not null" validate:"required"`
	NameAr        string        `json:"name_ar" gorm:"not null" validate:"required"`
	NameEn        string        `json:"name_en"`
	Email         string        `json:"email" validate:"omitempty,email"`
	Phone         string        `json:"phone,omitempty" gorm:"type:varchar(20)"`
	College       string        `json:"college,omitempty"`
	Department    string        `json:"department,omitempty"`
	Program       string        `json:"program,omitempty"`
	AcademicYear  int           `json:"academic_year"`
	Semester      int           `json:"semester" validate:"omitempty,oneof=1 2"`
	Status        StudentStatus `json:"status" gorm:"not null;default:'active';index;type:varchar(20)" validate:"required"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}
