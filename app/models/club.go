package models

import "time"

// Club represents a student club.
type Club struct {
	ID             string       `json:"id"`
	NameAr         string       `json:"name_ar"`
	NameEn         string       `json:"name_en"`
	DescriptionAr  string       `json:"description_ar"`
	DescriptionEn  string       `json:"description_en"`
	Category       ClubCategory `json:"category"`
	Supervisor     string       `json:"supervisor"`
	Location       string       `json:"location"`
	MaxMembers     int          `json:"max_members"`
	CurrentMembers int          `json:"current_members"`
	Status         ClubStatus   `json:"status"`
	IsFeatured     bool         `json:"is_featured"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
