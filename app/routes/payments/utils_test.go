package payments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

func samplePayments() []models.Payment {
	return []models.Payment{
		{ID: "1", InvoiceNumber: "INV-AA11", Type: models.PaymentTuition, Status: models.PaymentPending,
			Student: &models.Student{NameAr: "أحمد صالح", StudentNumber: "2026-0001"}},
		{ID: "2", InvoiceNumber: "INV-BB22", Type: models.PaymentExam, Status: models.PaymentPaid,
			Student: &models.Student{NameAr: "سارة علي", StudentNumber: "2026-0002"}},
		{ID: "3", InvoiceNumber: "INV-CC33", Reference: "bank-7411", Type: models.PaymentTuition, Status: models.PaymentOverdue},
	}
}

func TestFilterPaymentsSearchAndFilters(t *testing.T) {
	rows := samplePayments()

	got := FilterPayments(rows, "inv-bb", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// Student name and number are searchable when the join is present.
	got = FilterPayments(rows, "أحمد", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = FilterPayments(rows, "2026-0002", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// A row without the join does not panic and still matches on reference.
	got = FilterPayments(rows, "bank-7411", "all", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterPayments(rows, "", "tuition", "overdue")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterPayments(rows, "", "all", "all")
	assert.Equal(t, rows, got)
}

func TestSanitizeFillsPaymentDefaults(t *testing.T) {
	req := &PaymentRequest{StudentID: " abc ", Amount: 50000, Currency: "yer"}
	req.Sanitize()

	assert.Equal(t, "abc", req.StudentID)
	assert.Equal(t, "YER", req.Currency)
	assert.Equal(t, "tuition", req.Type)
	assert.Equal(t, "pending", req.Status)
	assert.True(t, strings.HasPrefix(req.InvoiceNumber, "INV-"))

	// A provided invoice number is kept.
	req = &PaymentRequest{StudentID: "abc", Amount: 1, InvoiceNumber: "INV-GIVEN"}
	req.Sanitize()
	assert.Equal(t, "INV-GIVEN", req.InvoiceNumber)
}

func TestToModelCoercesEmptyProgramToNull(t *testing.T) {
	req := &PaymentRequest{StudentID: "abc", Amount: 1}
	req.Sanitize()
	p := req.ToModel("")
	assert.Nil(t, p.ProgramID)

	req = &PaymentRequest{StudentID: "abc", Amount: 1, ProgramID: "prog-1"}
	req.Sanitize()
	p = req.ToModel("")
	require.NotNil(t, p.ProgramID)
	assert.Equal(t, "prog-1", *p.ProgramID)
}

func TestNewInvoiceNumberIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := NewInvoiceNumber()
		assert.False(t, seen[n])
		seen[n] = true
	}
}
