package activities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

func sampleActivities() []models.Activity {
	return []models.Activity{
		{ID: "1", TitleAr: "ورشة الذكاء الاصطناعي", TitleEn: "AI Workshop", Type: models.ActivityWorkshop, Status: models.ActivityOpen},
		{ID: "2", TitleAr: "رحلة إلى عدن", TitleEn: "Trip to Aden", Organizer: "عمادة شؤون الطلاب", Type: models.ActivityTrip, Status: models.ActivityPlanned},
		{ID: "3", TitleAr: "مسابقة البرمجة", TitleEn: "Programming Contest", Type: models.ActivityCompetition, Status: models.ActivityCompleted},
	}
}

func TestFilterActivitiesSearchAndFilters(t *testing.T) {
	rows := sampleActivities()

	got := FilterActivities(rows, "workshop", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Organizer is searchable.
	got = FilterActivities(rows, "عمادة", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterActivities(rows, "", "competition", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterActivities(rows, "", "all", "planned")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterActivities(rows, "", "all", "all")
	assert.Equal(t, rows, got)
}

func TestSanitizeFillsDefaults(t *testing.T) {
	req := &ActivityRequest{TitleAr: " فعالية "}
	req.Sanitize()

	assert.Equal(t, "فعالية", req.TitleAr)
	assert.Equal(t, "event", req.Type)
	assert.Equal(t, "planned", req.Status)
}

func TestToModelKeepsDatesAsEntered(t *testing.T) {
	// End before start is stored as given, no ordering is enforced.
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(-48 * time.Hour)

	req := &ActivityRequest{TitleAr: "فعالية", StartDate: &start, EndDate: &end}
	req.Sanitize()

	a := req.ToModel("x")
	require.NotNil(t, a.StartDate)
	require.NotNil(t, a.EndDate)
	assert.True(t, a.EndDate.Before(*a.StartDate))
	assert.Nil(t, a.RegistrationDeadline)
}
