package activities

import (
	"strings"
	"time"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
)

// ActivityRequest is the create/update payload. Start/end/deadline carry no
// ordering invariant and are stored as entered. UpdatedAt carries the
// caller's last-seen row stamp and is only read on update.
type ActivityRequest struct {
	TitleAr              string     `json:"title_ar" validate:"required"`
	TitleEn              string     `json:"title_en"`
	DescriptionAr        string     `json:"description_ar"`
	DescriptionEn        string     `json:"description_en"`
	Type                 string     `json:"type" validate:"omitempty,oneof=event workshop competition seminar trip cultural sports"`
	Category             string     `json:"category"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	Location             string     `json:"location"`
	Organizer            string     `json:"organizer"`
	MaxParticipants      int        `json:"max_participants" validate:"gte=0"`
	CurrentParticipants  int        `json:"current_participants" validate:"gte=0"`
	Status               string     `json:"status" validate:"omitempty,oneof=planned open closed ongoing completed cancelled"`
	IsFeatured           bool       `json:"is_featured"`
	Fee                  float64    `json:"fee" validate:"gte=0"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Sanitize trims free-text fields and fills the form defaults.
func (r *ActivityRequest) Sanitize() {
	r.TitleAr = strings.TrimSpace(r.TitleAr)
	r.TitleEn = strings.TrimSpace(r.TitleEn)
	r.DescriptionAr = strings.TrimSpace(r.DescriptionAr)
	r.DescriptionEn = strings.TrimSpace(r.DescriptionEn)
	r.Category = strings.TrimSpace(r.Category)
	r.Location = strings.TrimSpace(r.Location)
	r.Organizer = strings.TrimSpace(r.Organizer)

	if r.Type == "" {
		r.Type = string(models.ActivityEvent)
	}
	if r.Status == "" {
		r.Status = string(models.ActivityPlanned)
	}
}

// ToModel builds the full record for insert/update.
func (r *ActivityRequest) ToModel(id string) *models.Activity {
	return &models.Activity{
		ID:                   id,
		TitleAr:              r.TitleAr,
		TitleEn:              r.TitleEn,
		DescriptionAr:        r.DescriptionAr,
		DescriptionEn:        r.DescriptionEn,
		Type:                 models.ActivityType(r.Type),
		Category:             r.Category,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		RegistrationDeadline: r.RegistrationDeadline,
		Location:             r.Location,
		Organizer:            r.Organizer,
		MaxParticipants:      r.MaxParticipants,
		CurrentParticipants:  r.CurrentParticipants,
		Status:               models.ActivityStatus(r.Status),
		IsFeatured:           r.IsFeatured,
		Fee:                  r.Fee,
	}
}

// ActivityRow is a table row decorated with its display badges.
type ActivityRow struct {
	models.Activity
	TypeBadge   models.Badge `json:"type_badge"`
	StatusBadge models.Badge `json:"status_badge"`
}

// DecorateActivities attaches the Arabic label/color badges the table
// renders.
func DecorateActivities(rows []models.Activity) []ActivityRow {
	out := make([]ActivityRow, len(rows))
	for i, a := range rows {
		out[i] = ActivityRow{
			Activity:    a,
			TypeBadge:   models.ActivityTypeBadge(string(a.Type)),
			StatusBadge: models.ActivityStatusBadge(string(a.Status)),
		}
	}
	return out
}

// FilterActivities applies the table-view predicate: case-insensitive
// substring search over title/description/organizer AND equality filters
// with the "all" sentinel.
func FilterActivities(rows []models.Activity, search, activityType, status string) []models.Activity {
	search = strings.TrimSpace(search)
	out := make([]models.Activity, 0, len(rows))
	for _, a := range rows {
		if !helpers.ContainsFold(search, a.TitleAr, a.TitleEn, a.DescriptionAr, a.DescriptionEn, a.Organizer) {
			continue
		}
		if !helpers.MatchesFilter(string(a.Type), activityType) {
			continue
		}
		if !helpers.MatchesFilter(string(a.Status), status) {
			continue
		}
		out = append(out, a)
	}
	return out
}
