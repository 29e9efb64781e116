package models

import "time"

// Teacher represents a teaching staff profile. Deleting a teacher is a soft
// deactivation: is_active is set false, the row is kept.
type Teacher struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID         string          `json:"user_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	NameAr         string          `json:"name_ar" gorm:"not null" validate:"required"`
	NameEn         string          `json:"name_en"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone,omitempty" gorm:"type:varchar(20)"`
	DepartmentID   *string         `json:"department_id,omitempty" gorm:"index;type:uuid"`
	Position       TeacherPosition `json:"position" gorm:"not null;type:varchar(30)" validate:"required"`
	Specialization string          `json:"specialization,omitempty"`
	Qualifications string          `json:"qualifications,omitempty"`
	OfficeLocation string          `json:"office_location,omitempty"`
	OfficeHours    string          `json:"office_hours,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	ProfileImage   string          `json:"profile_image_url,omitempty"`
	CVURL          string          `json:"cv_url,omitempty"`
	IsActive       bool            `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
}
