package database

import (
	"database/sql"
	"time"

	"alandalus-portal/app/models"
)

// ClubFilters represents the store-side filtering options for clubs.
type ClubFilters struct {
	Category string
	Status   string
}

// CreateClub adds a new club to the database
func CreateClub(db *sql.DB, club *models.Club) error {
	query := `
		INSERT INTO clubs (name_ar, name_en, description_ar, description_en, category, supervisor,
			location, max_members, current_members, status, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query,
		club.NameAr, club.NameEn, club.DescriptionAr, club.DescriptionEn, club.Category,
		club.Supervisor, club.Location, club.MaxMembers, club.CurrentMembers,
		club.Status, club.IsFeatured,
	).Scan(&club.ID, &club.CreatedAt, &club.UpdatedAt)
}

// GetClubs retrieves clubs ordered by creation time descending.
func GetClubs(db *sql.DB, filters ClubFilters) ([]models.Club, error) {
	query := `
		SELECT id, name_ar, name_en, description_ar, description_en, category, supervisor,
			location, max_members, current_members, status, is_featured, created_at, updated_at
		FROM clubs
		WHERE ($1 = '' OR category = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, filters.Category, filters.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(
			&c.ID, &c.NameAr, &c.NameEn, &c.DescriptionAr, &c.DescriptionEn, &c.Category,
			&c.Supervisor, &c.Location, &c.MaxMembers, &c.CurrentMembers,
			&c.Status, &c.IsFeatured, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

// GetClubByID retrieves a single club
func GetClubByID(db *sql.DB, id string) (*models.Club, error) {
	c := &models.Club{}
	query := `
		SELECT id, name_ar, name_en, description_ar, description_en, category, supervisor,
			location, max_members, current_members, status, is_featured, created_at, updated_at
		FROM clubs WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&c.ID, &c.NameAr, &c.NameEn, &c.DescriptionAr, &c.DescriptionEn, &c.Category,
		&c.Supervisor, &c.Location, &c.MaxMembers, &c.CurrentMembers,
		&c.Status, &c.IsFeatured, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateClub performs a full-record update guarded by the caller's last-seen
// updated_at stamp.
func UpdateClub(db *sql.DB, club *models.Club, lastSeen time.Time) error {
	query := `
		UPDATE clubs
		SET name_ar = $1, name_en = $2, description_ar = $3, description_en = $4, category = $5,
			supervisor = $6, location = $7, max_members = $8, current_members = $9,
			status = $10, is_featured = $11, updated_at = NOW()
		WHERE id = $12 AND updated_at = $13
	`
	res, err := db.Exec(query,
		club.NameAr, club.NameEn, club.DescriptionAr, club.DescriptionEn, club.Category,
		club.Supervisor, club.Location, club.MaxMembers, club.CurrentMembers,
		club.Status, club.IsFeatured, club.ID, lastSeen,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return resolveMissedUpdate(db, "clubs", club.ID)
	}
	return nil
}

// DeleteClub deletes a club by ID
func DeleteClub(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
