package services

import (
	"strings"
	"time"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
)

// ServiceRequest is the create/update payload. UpdatedAt carries the
// caller's last-seen row stamp and is only read on update.
type ServiceRequest struct {
	TitleAr           string    `json:"title_ar" validate:"required"`
	TitleEn           string    `json:"title_en"`
	DescriptionAr     string    `json:"description_ar"`
	DescriptionEn     string    `json:"description_en"`
	Icon              string    `json:"icon"`
	Category          string    `json:"category" validate:"omitempty,oneof=academic certificates technical administrative"`
	Status            string    `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
	IsFeatured        bool      `json:"is_featured"`
	ProcessingTime    string    `json:"processing_time"`
	Fee               float64   `json:"fee" validate:"gte=0"`
	RequiredDocuments []string  `json:"required_documents"`
	Benefits          []string  `json:"benefits"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Sanitize trims free-text fields, drops empty list entries and fills the
// form defaults for absent enum fields.
func (r *ServiceRequest) Sanitize() {
	r.TitleAr = strings.TrimSpace(r.TitleAr)
	r.TitleEn = strings.TrimSpace(r.TitleEn)
	r.DescriptionAr = strings.TrimSpace(r.DescriptionAr)
	r.DescriptionEn = strings.TrimSpace(r.DescriptionEn)
	r.Icon = strings.TrimSpace(r.Icon)
	r.ProcessingTime = strings.TrimSpace(r.ProcessingTime)
	r.RequiredDocuments = helpers.CompactList(r.RequiredDocuments)
	r.Benefits = helpers.CompactList(r.Benefits)

	if r.Icon == "" {
		r.Icon = "FileText"
	}
	if r.Category == "" {
		r.Category = string(models.ServiceAcademic)
	}
	if r.Status == "" {
		r.Status = string(models.ServiceActive)
	}
}

// ToModel builds the full record for insert/update.
func (r *ServiceRequest) ToModel(id string) *models.Service {
	return &models.Service{
		ID:                id,
		TitleAr:           r.TitleAr,
		TitleEn:           r.TitleEn,
		DescriptionAr:     r.DescriptionAr,
		DescriptionEn:     r.DescriptionEn,
		Icon:              r.Icon,
		Category:          models.ServiceCategory(r.Category),
		Status:            models.ServiceStatus(r.Status),
		IsFeatured:        r.IsFeatured,
		ProcessingTime:    r.ProcessingTime,
		Fee:               r.Fee,
		RequiredDocuments: r.RequiredDocuments,
		Benefits:          r.Benefits,
	}
}

// ServiceRow is a table row decorated with its display badges.
type ServiceRow struct {
	models.Service
	StatusBadge   models.Badge `json:"status_badge"`
	CategoryBadge models.Badge `json:"category_badge"`
}

// DecorateServices attaches the Arabic label/color badges the table renders.
func DecorateServices(rows []models.Service) []ServiceRow {
	out := make([]ServiceRow, len(rows))
	for i, s := range rows {
		out[i] = ServiceRow{
			Service:       s,
			StatusBadge:   models.ServiceStatusBadge(string(s.Status)),
			CategoryBadge: models.ServiceCategoryBadge(string(s.Category)),
		}
	}
	return out
}

// FilterServices applies the table-view predicate: case-insensitive
// substring search over the bilingual title/description fields AND equality
// filters with the "all" sentinel. Ordering is preserved.
func FilterServices(rows []models.Service, search, category, status string) []models.Service {
	search = strings.TrimSpace(search)
	out := make([]models.Service, 0, len(rows))
	for _, s := range rows {
		if !helpers.ContainsFold(search, s.TitleAr, s.TitleEn, s.DescriptionAr, s.DescriptionEn) {
			continue
		}
		if !helpers.MatchesFilter(string(s.Category), category) {
			continue
		}
		if !helpers.MatchesFilter(string(s.Status), status) {
			continue
		}
		out = append(out, s)
	}
	return out
}
