package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

func sampleServices() []models.Service {
	return []models.Service{
		{ID: "1", TitleAr: "طلب كشف درجات", TitleEn: "Transcript Request", Category: models.ServiceAcademic, Status: models.ServiceActive},
		{ID: "2", TitleAr: "شهادة تخرج", TitleEn: "Graduation Certificate", Category: models.ServiceCertificates, Status: models.ServiceActive},
		{ID: "3", TitleAr: "دعم فني", TitleEn: "Technical Support", DescriptionEn: "Help with the student portal", Category: models.ServiceTechnical, Status: models.ServiceMaintenance},
	}
}

func TestFilterServicesSearchIsCaseInsensitiveSubstring(t *testing.T) {
	rows := sampleServices()

	got := FilterServices(rows, "tRaNsCr", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Arabic fields are searchable too.
	got = FilterServices(rows, "شهادة", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// Description fields participate in the search.
	got = FilterServices(rows, "portal", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	// Empty term matches everything, order preserved.
	got = FilterServices(rows, "", "all", "all")
	assert.Equal(t, rows, got)
}

func TestFilterServicesEqualityFiltersWithAllSentinel(t *testing.T) {
	rows := sampleServices()

	got := FilterServices(rows, "", "certificates", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterServices(rows, "", "all", "maintenance")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	// Search and equality filters compose with AND.
	got = FilterServices(rows, "support", "technical", "maintenance")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterServices(rows, "support", "academic", "all")
	assert.Empty(t, got)
}

func TestSanitizeFillsDefaults(t *testing.T) {
	req := &ServiceRequest{TitleAr: "  خدمة تجريبية  "}
	req.Sanitize()

	assert.Equal(t, "خدمة تجريبية", req.TitleAr)
	assert.Equal(t, "FileText", req.Icon)
	assert.Equal(t, "academic", req.Category)
	assert.Equal(t, "active", req.Status)
	assert.Empty(t, req.RequiredDocuments)
	assert.Empty(t, req.Benefits)
}

func TestSanitizeFiltersEmptyListEntries(t *testing.T) {
	req := &ServiceRequest{
		TitleAr:           "خدمة تجريبية",
		RequiredDocuments: []string{"", "doc1", ""},
		Benefits:          []string{"  ", "benefit1", "benefit2", ""},
	}
	req.Sanitize()

	assert.Equal(t, []string{"doc1"}, req.RequiredDocuments)
	assert.Equal(t, []string{"benefit1", "benefit2"}, req.Benefits)
}

func TestSanitizeKeepsProvidedValues(t *testing.T) {
	req := &ServiceRequest{
		TitleAr:  "خدمة",
		Icon:     "GraduationCap",
		Category: "certificates",
		Status:   "inactive",
		Fee:      1500,
	}
	req.Sanitize()

	s := req.ToModel("abc")
	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, models.ServiceCertificates, s.Category)
	assert.Equal(t, models.ServiceInactive, s.Status)
	assert.Equal(t, "GraduationCap", s.Icon)
	assert.Equal(t, 1500.0, s.Fee)
}
