package database

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"alandalus-portal/app/models"
)

// ServiceFilters represents the store-side filtering options for services.
type ServiceFilters struct {
	Category string
	Status   string
}

// CreateService adds a new service to the database
func CreateService(db *sql.DB, s *models.Service) error {
	query := `
		INSERT INTO services (title_ar, title_en, description_ar, description_en, icon, category,
			status, is_featured, processing_time, fee, required_documents, benefits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query,
		s.TitleAr, s.TitleEn, s.DescriptionAr, s.DescriptionEn, s.Icon, s.Category,
		s.Status, s.IsFeatured, s.ProcessingTime, s.Fee,
		pq.Array(s.RequiredDocuments), pq.Array(s.Benefits),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// GetServices retrieves services ordered by creation time descending,
// optionally narrowed by store-side equality filters.
func GetServices(db *sql.DB, filters ServiceFilters) ([]models.Service, error) {
	query := `
		SELECT id, title_ar, title_en, description_ar, description_en, icon, category,
			status, is_featured, processing_time, fee, required_documents, benefits, created_at, updated_at
		FROM services
		WHERE ($1 = '' OR category = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, filters.Category, filters.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(
			&s.ID, &s.TitleAr, &s.TitleEn, &s.DescriptionAr, &s.DescriptionEn, &s.Icon, &s.Category,
			&s.Status, &s.IsFeatured, &s.ProcessingTime, &s.Fee,
			pq.Array(&s.RequiredDocuments), pq.Array(&s.Benefits), &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetServiceByID retrieves a single service
func GetServiceByID(db *sql.DB, id string) (*models.Service, error) {
	s := &models.Service{}
	query := `
		SELECT id, title_ar, title_en, description_ar, description_en, icon, category,
			status, is_featured, processing_time, fee, required_documents, benefits, created_at, updated_at
		FROM services WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.TitleAr, &s.TitleEn, &s.DescriptionAr, &s.DescriptionEn, &s.Icon, &s.Category,
		&s.Status, &s.IsFeatured, &s.ProcessingTime, &s.Fee,
		pq.Array(&s.RequiredDocuments), pq.Array(&s.Benefits), &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateService performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateService(db *sql.DB, s *models.Service, lastSeen time.Time) error {
	query := `
		UPDATE services
		SET title_ar = $1, title_en = $2, description_ar = $3, description_en = $4, icon = $5,
			category = $6, status = $7, is_featured = $8, processing_time = $9, fee = $10,
			required_documents = $11, benefits = $12, updated_at = NOW()
		WHERE id = $13 AND updated_at = $14
	`
	res, err := db.Exec(query,
		s.TitleAr, s.TitleEn, s.DescriptionAr, s.DescriptionEn, s.Icon,
		s.Category, s.Status, s.IsFeatured, s.ProcessingTime, s.Fee,
		pq.Array(s.RequiredDocuments), pq.Array(s.Benefits),
		s.ID, lastSeen,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resolveMissedUpdate(db, "services", s.ID)
	}
	return nil
}

// DeleteService deletes a service by ID
func DeleteService(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
