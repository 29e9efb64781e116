package models

import "time"

// Activity represents a campus activity: an event, workshop, competition,
// seminar or trip. Start/end/deadline carry no ordering invariant; rows are
// stored as entered.
type Activity struct {
	ID                   string         `json:"id"`
	TitleAr              string         `json:"title_ar"`
	TitleEn              string         `json:"title_en"`
	DescriptionAr        string         `json:"description_ar"`
	DescriptionEn        string         `json:"description_en"`
	Type                 ActivityType   `json:"type"`
	Category             string         `json:"category"`
	StartDate            *time.Time     `json:"start_date,omitempty"`
	EndDate              *time.Time     `json:"end_date,omitempty"`
	RegistrationDeadline *time.Time     `json:"registration_deadline,omitempty"`
	Location             string         `json:"location"`
	Organizer            string         `json:"organizer"`
	MaxParticipants      int            `json:"max_participants"`
	CurrentParticipants  int            `json:"current_participants"`
	Status               ActivityStatus `json:"status"`
	IsFeatured           bool           `json:"is_featured"`
	Fee                  float64        `json:"fee"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
