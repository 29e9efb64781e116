package payments

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
)

// PaymentRequest is the create/update payload. UpdatedAt carries the
// caller's last-seen row stamp and is only read on update.
type PaymentRequest struct {
	StudentID     string     `json:"student_id" validate:"required"`
	ProgramID     string     `json:"program_id"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	Currency      string     `json:"currency"`
	Type          string     `json:"type" validate:"omitempty,oneof=tuition registration exam library fine other"`
	Status        string     `json:"status" validate:"omitempty,oneof=pending paid overdue cancelled"`
	Method        string     `json:"method"`
	PaymentDate   *time.Time `json:"payment_date"`
	DueDate       *time.Time `json:"due_date"`
	InvoiceNumber string     `json:"invoice_number"`
	Reference     string     `json:"reference"`
	AcademicYear  string     `json:"academic_year"`
	Semester      int        `json:"semester" validate:"omitempty,oneof=1 2"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Sanitize trims free-text fields and fills the form defaults. A missing
// invoice number gets a generated one.
func (r *PaymentRequest) Sanitize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.ProgramID = strings.TrimSpace(r.ProgramID)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	r.Method = strings.TrimSpace(r.Method)
	r.InvoiceNumber = strings.TrimSpace(r.InvoiceNumber)
	r.Reference = strings.TrimSpace(r.Reference)
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)

	if r.Currency == "" {
		r.Currency = "YER"
	}
	if r.Type == "" {
		r.Type = string(models.PaymentTuition)
	}
	if r.Status == "" {
		r.Status = string(models.PaymentPending)
	}
	if r.InvoiceNumber == "" {
		r.InvoiceNumber = NewInvoiceNumber()
	}
}

// NewInvoiceNumber generates a short unique invoice reference.
func NewInvoiceNumber() string {
	id := uuid.New().String()
	return "INV-" + strings.ToUpper(id[:8])
}

// ToModel builds the full record for insert/update. An empty program
// reference is coerced to null.
func (r *PaymentRequest) ToModel(id string) *models.Payment {
	p := &models.Payment{
		ID:            id,
		StudentID:     r.StudentID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Type:          models.PaymentType(r.Type),
		Status:        models.PaymentStatus(r.Status),
		Method:        r.Method,
		PaymentDate:   r.PaymentDate,
		DueDate:       r.DueDate,
		InvoiceNumber: r.InvoiceNumber,
		Reference:     r.Reference,
		AcademicYear:  r.AcademicYear,
		Semester:      r.Semester,
	}
	if r.ProgramID != "" {
		p.ProgramID = &r.ProgramID
	}
	return p
}

// PaymentRow is a table row decorated with its display badges.
type PaymentRow struct {
	models.Payment
	StatusBadge models.Badge `json:"status_badge"`
	TypeBadge   models.Badge `json:"type_badge"`
}

// DecoratePayments attaches the Arabic label/color badges the table renders.
func DecoratePayments(rows []models.Payment) []PaymentRow {
	out := make([]PaymentRow, len(rows))
	for i, p := range rows {
		out[i] = PaymentRow{
			Payment:     p,
			StatusBadge: models.PaymentStatusBadge(string(p.Status)),
			TypeBadge:   models.PaymentTypeBadge(string(p.Type)),
		}
	}
	return out
}

// FilterPayments applies the table-view predicate: case-insensitive
// substring search over invoice/reference/student fields AND equality
// filters with the "all" sentinel.
func FilterPayments(rows []models.Payment, search, paymentType, status string) []models.Payment {
	search = strings.TrimSpace(search)
	out := make([]models.Payment, 0, len(rows))
	for _, p := range rows {
		studentName := ""
		studentNumber := ""
		if p.Student != nil {
			studentName = p.Student.NameAr
			studentNumber = p.Student.StudentNumber
		}
		if !helpers.ContainsFold(search, p.InvoiceNumber, p.Reference, studentName, studentNumber) {
			continue
		}
		if !helpers.MatchesFilter(string(p.Type), paymentType) {
			continue
		}
		if !helpers.MatchesFilter(string(p.Status), status) {
			continue
		}
		out = append(out, p)
	}
	return out
}
