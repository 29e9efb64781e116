package clubs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

func sampleClubs() []models.Club {
	return []models.Club{
		{ID: "1", NameAr: "نادي البرمجة", NameEn: "Programming Club", Category: models.ClubTechnical, Status: models.ClubActive},
		{ID: "2", NameAr: "النادي الثقافي", NameEn: "Cultural Club", Supervisor: "د. خالد", Category: models.ClubCultural, Status: models.ClubRecruiting},
		{ID: "3", NameAr: "نادي كرة القدم", NameEn: "Football Club", Category: models.ClubSports, Status: models.ClubInactive},
	}
}

func TestFilterClubsSearchAndFilters(t *testing.T) {
	rows := sampleClubs()

	got := FilterClubs(rows, "PROGRAM", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Supervisor is searchable.
	got = FilterClubs(rows, "خالد", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterClubs(rows, "", "sports", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterClubs(rows, "", "all", "recruiting")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterClubs(rows, "", "all", "all")
	assert.Equal(t, rows, got)
}

func TestSanitizeCoalescesMaxMembers(t *testing.T) {
	req := &ClubRequest{NameAr: "نادي"}
	req.Sanitize()

	assert.Equal(t, DefaultMaxMembers, req.MaxMembers)
	assert.Equal(t, "cultural", req.Category)
	assert.Equal(t, "active", req.Status)

	// A provided capacity is kept.
	req = &ClubRequest{NameAr: "نادي", MaxMembers: 120}
	req.Sanitize()
	assert.Equal(t, 120, req.MaxMembers)
}

func TestSeedRequestReproducesRowValues(t *testing.T) {
	now := time.Now()
	club := &models.Club{
		ID:             "7",
		NameAr:         "نادي الروبوت",
		NameEn:         "Robotics Club",
		Category:       models.ClubScientific,
		Supervisor:     "د. منى",
		Location:       "مبنى الهندسة",
		MaxMembers:     30,
		CurrentMembers: 12,
		Status:         models.ClubActive,
		IsFeatured:     true,
		UpdatedAt:      now,
	}

	form := SeedRequest(club)
	assert.Equal(t, club.NameAr, form.NameAr)
	assert.Equal(t, string(club.Category), form.Category)
	assert.Equal(t, 30, form.MaxMembers)
	assert.Equal(t, 12, form.CurrentMembers)
	assert.Equal(t, now, form.UpdatedAt)

	// Round-tripping the seed through ToModel reproduces the row.
	got := form.ToModel(club.ID)
	got.CreatedAt = club.CreatedAt
	got.UpdatedAt = club.UpdatedAt
	assert.Equal(t, club, got)
}

func TestSeedRequestCoalescesMissingCapacity(t *testing.T) {
	form := SeedRequest(&models.Club{NameAr: "نادي"})
	assert.Equal(t, DefaultMaxMembers, form.MaxMembers)
}
