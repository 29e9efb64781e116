package clubs

import (
	"strings"
	"time"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
)

// DefaultMaxMembers fills an absent club capacity.
const DefaultMaxMembers = 50

// ClubRequest is the create/update payload. UpdatedAt carries the caller's
// last-seen row stamp and is only read on update.
type ClubRequest struct {
	NameAr         string    `json:"name_ar" validate:"required"`
	NameEn         string    `json:"name_en"`
	DescriptionAr  string    `json:"description_ar"`
	DescriptionEn  string    `json:"description_en"`
	Category       string    `json:"category" validate:"omitempty,oneof=cultural sports scientific social artistic technical religious voluntary"`
	Supervisor     string    `json:"supervisor"`
	Location       string    `json:"location"`
	MaxMembers     int       `json:"max_members" validate:"gte=0"`
	CurrentMembers int       `json:"current_members" validate:"gte=0"`
	Status         string    `json:"status" validate:"omitempty,oneof=active inactive recruiting"`
	IsFeatured     bool      `json:"is_featured"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Sanitize trims free-text fields and fills the form defaults. An absent or
// zero max_members coalesces to DefaultMaxMembers.
func (r *ClubRequest) Sanitize() {
	r.NameAr = strings.TrimSpace(r.NameAr)
	r.NameEn = strings.TrimSpace(r.NameEn)
	r.DescriptionAr = strings.TrimSpace(r.DescriptionAr)
	r.DescriptionEn = strings.TrimSpace(r.DescriptionEn)
	r.Supervisor = strings.TrimSpace(r.Supervisor)
	r.Location = strings.TrimSpace(r.Location)

	if r.MaxMembers == 0 {
		r.MaxMembers = DefaultMaxMembers
	}
	if r.Category == "" {
		r.Category = string(models.ClubCultural)
	}
	if r.Status == "" {
		r.Status = string(models.ClubActive)
	}
}

// ToModel builds the full record for insert/update.
func (r *ClubRequest) ToModel(id string) *models.Club {
	return &models.Club{
		ID:             id,
		NameAr:         r.NameAr,
		NameEn:         r.NameEn,
		DescriptionAr:  r.DescriptionAr,
		DescriptionEn:  r.DescriptionEn,
		Category:       models.ClubCategory(r.Category),
		Supervisor:     r.Supervisor,
		Location:       r.Location,
		MaxMembers:     r.MaxMembers,
		CurrentMembers: r.CurrentMembers,
		Status:         models.ClubStatus(r.Status),
		IsFeatured:     r.IsFeatured,
	}
}

// SeedRequest builds an edit form payload from a fetched row, coalescing a
// missing capacity back to the default.
func SeedRequest(club *models.Club) *ClubRequest {
	r := &ClubRequest{
		NameAr:         club.NameAr,
		NameEn:         club.NameEn,
		DescriptionAr:  club.DescriptionAr,
		DescriptionEn:  club.DescriptionEn,
		Category:       string(club.Category),
		Supervisor:     club.Supervisor,
		Location:       club.Location,
		MaxMembers:     club.MaxMembers,
		CurrentMembers: club.CurrentMembers,
		Status:         string(club.Status),
		IsFeatured:     club.IsFeatured,
		UpdatedAt:      club.UpdatedAt,
	}
	if r.MaxMembers == 0 {
		r.MaxMembers = DefaultMaxMembers
	}
	return r
}

// ClubRow is a table row decorated with its display badges.
type ClubRow struct {
	models.Club
	StatusBadge   models.Badge `json:"status_badge"`
	CategoryBadge models.Badge `json:"category_badge"`
}

// DecorateClubs attaches the Arabic label/color badges the table renders.
func DecorateClubs(rows []models.Club) []ClubRow {
	out := make([]ClubRow, len(rows))
	for i, club := range rows {
		out[i] = ClubRow{
			Club:          club,
			StatusBadge:   models.ClubStatusBadge(string(club.Status)),
			CategoryBadge: models.ClubCategoryBadge(string(club.Category)),
		}
	}
	return out
}

// FilterClubs applies the table-view predicate: case-insensitive substring
// search over name/description/supervisor AND equality filters with the
// "all" sentinel.
func FilterClubs(rows []models.Club, search, category, status string) []models.Club {
	search = strings.TrimSpace(search)
	out := make([]models.Club, 0, len(rows))
	for _, club := range rows {
		if !helpers.ContainsFold(search, club.NameAr, club.NameEn, club.DescriptionAr, club.DescriptionEn, club.Supervisor) {
			continue
		}
		if !helpers.MatchesFilter(string(club.Category), category) {
			continue
		}
		if !helpers.MatchesFilter(string(club.Status), status) {
			continue
		}
		out = append(out, club)
	}
	return out
}
