package models

import "time"

// Service represents an administrative service offered by the university
// (transcript requests, certificate issuance, lab access and so on).
type Service struct {
	ID                string          `json:"id"`
	TitleAr           string          `json:"title_ar"`
	TitleEn           string          `json:"title_en"`
	DescriptionAr     string          `json:"description_ar"`
	DescriptionEn     string          `json:"description_en"`
	Icon              string          `json:"icon"`
	Category          ServiceCategory `json:"category"`
	Status            ServiceStatus   `json:"status"`
	IsFeatured        bool            `json:"is_featured"`
	ProcessingTime    string          `json:"processing_time"`
	Fee               float64         `json:"fee"`
	RequiredDocuments []string        `json:"required_documents"`
	Benefits          []string        `json:"benefits"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
