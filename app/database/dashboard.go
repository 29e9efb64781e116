package database

import "database/sql"

// DashboardStats aggregates the counters shown on the admin landing screen.
type DashboardStats struct {
	Services        int     `json:"services"`
	Clubs           int     `json:"clubs"`
	Activities      int     `json:"activities"`
	Appointments    int     `json:"appointments"`
	Teachers        int     `json:"teachers"`
	Students        int     `json:"students"`
	PendingPayments int     `json:"pending_payments"`
	OverduePayments int     `json:"overdue_payments"`
	PaidTotal       float64 `json:"paid_total"`
}

// GetDashboardStats collects entity counts and payment totals.
func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM services),
			(SELECT COUNT(*) FROM clubs),
			(SELECT COUNT(*) FROM activities),
			(SELECT COUNT(*) FROM appointments),
			(SELECT COUNT(*) FROM teachers WHERE is_active),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM payments WHERE status = 'pending'),
			(SELECT COUNT(*) FROM payments WHERE status = 'overdue'),
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'paid')
	`
	err := db.QueryRow(query).Scan(
		&stats.Services, &stats.Clubs, &stats.Activities, &stats.Appointments,
		&stats.Teachers, &stats.Students,
		&stats.PendingPayments, &stats.OverduePayments, &stats.PaidTotal,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
