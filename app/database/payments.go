package database

import (
	"database/sql"
	"time"

	"alandalus-portal/app/models"
)

// PaymentFilters represents the store-side filtering options for payments.
type PaymentFilters struct {
	StudentID string
	Type      string
	Status    string
}

// CreatePayment adds a new payment row.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	query := `
		INSERT INTO payments (student_id, program_id, amount, currency, type, status, method,
			payment_date, due_date, invoice_number, reference, academic_year, semester, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query,
		p.StudentID, p.ProgramID, p.Amount, p.Currency, p.Type, p.Status, p.Method,
		p.PaymentDate, p.DueDate, p.InvoiceNumber, p.Reference, p.AcademicYear, p.Semester,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetPayments retrieves payments ordered by creation time descending, joined
// with the student's display name.
func GetPayments(db *sql.DB, filters PaymentFilters) ([]models.Payment, error) {
	query := `
		SELECT p.id, p.student_id, p.program_id, p.amount, p.currency, p.type, p.status, p.method,
			p.payment_date, p.due_date, p.invoice_number, p.reference, p.academic_year, p.semester,
			p.created_at, p.updated_at,
			s.id, s.student_number, s.name_ar
		FROM payments p
		JOIN students s ON s.id = p.student_id
		WHERE ($1 = '' OR p.student_id::text = $1)
			AND ($2 = '' OR p.type = $2)
			AND ($3 = '' OR p.status = $3)
		ORDER BY p.created_at DESC
	`
	rows, err := db.Query(query, filters.StudentID, filters.Type, filters.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var s models.Student
		if err := rows.Scan(
			&p.ID, &p.StudentID, &p.ProgramID, &p.Amount, &p.Currency, &p.Type, &p.Status, &p.Method,
			&p.PaymentDate, &p.DueDate, &p.InvoiceNumber, &p.Reference, &p.AcademicYear, &p.Semester,
			&p.CreatedAt, &p.UpdatedAt,
			&s.ID, &s.StudentNumber, &s.NameAr,
		); err != nil {
			return nil, err
		}
		p.Student = &s
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPaymentByID retrieves a single payment
func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	p := &models.Payment{}
	query := `
		SELECT id, student_id, program_id, amount, currency, type, status, method,
			payment_date, due_date, invoice_number, reference, academic_year, semester,
			created_at, updated_at
		FROM payments WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&p.ID, &p.StudentID, &p.ProgramID, &p.Amount, &p.Currency, &p.Type, &p.Status, &p.Method,
		&p.PaymentDate, &p.DueDate, &p.InvoiceNumber, &p.Reference, &p.AcademicYear, &p.Semester,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePayment performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdatePayment(db *sql.DB, p *models.Payment, lastSeen time.Time) error {
	query := `
		UPDATE payments
		SET student_id = $1, program_id = $2, amount = $3, currency = $4, type = $5, status = $6,
			method = $7, payment_date = $8, due_date = $9, invoice_number = $10, reference = $11,
			academic_year = $12, semester = $13, updated_at = NOW()
		WHERE id = $14 AND updated_at = $15
	`
	res, err := db.Exec(query,
		p.StudentID, p.ProgramID, p.Amount, p.Currency, p.Type, p.Status,
		p.Method, p.PaymentDate, p.DueDate, p.InvoiceNumber, p.Reference,
		p.AcademicYear, p.Semester, p.ID, lastSeen,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resolveMissedUpdate(db, "payments", p.ID)
	}
	return nil
}

// DeletePayment deletes a payment by ID
func DeletePayment(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkOverduePayments flips pending payments past their due date to overdue.
// Returns the number of rows changed.
func MarkOverduePayments(db *sql.DB) (int64, error) {
	query := `
		UPDATE payments
		SET status = 'overdue', updated_at = NOW()
		WHERE status = 'pending' AND due_date IS NOT NULL AND due_date < NOW()
	`
	res, err := db.Exec(query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
