package models

import "time"

// Department is reference data behind the department dropdowns.
type Department struct {
	ID        string    `json:"id"`
	NameAr    string    `json:"name_ar"`
	NameEn    string    `json:"name_en"`
	CreatedAt time.Time `json:"created_at"`
}

// Program is reference data behind the program dropdowns.
type Program struct {
	ID           string    `json:"id"`
	NameAr       string    `json:"name_ar"`
	NameEn       string    `json:"name_en"`
	DepartmentID *string   `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
