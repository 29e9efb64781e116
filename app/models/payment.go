package models

import "time"

// Payment represents a fee payment owed or made by a student.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ProgramID     *string       `json:"program_id,omitempty" gorm:"index;type:uuid"`
	Amount        float64       `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"required,gt=0"`
	Currency      string        `json:"currency" gorm:"not null;default:'YER';type:varchar(3)"`
	Type          PaymentType   `json:"type" gorm:"not null;type:varchar(20)" validate:"required"`
	Status        PaymentStatus `json:"status" gorm:"not null;default:'pending';index;type:varchar(20)" validate:"required"`
	Method        string        `json:"method,omitempty" gorm:"type:varchar(50)"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty" gorm:"index"`
	DueDate       *time.Time    `json:"due_date,omitempty" gorm:"index"`
	InvoiceNumber string        `json:"invoice_number,omitempty" gorm:"index"`
	Reference     string        `json:"reference,omitempty"`
	AcademicYear  string        `json:"academic_year,omitempty" gorm:"type:varchar(9)"`
	Semester      int           `json:"semester,omitempty"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
