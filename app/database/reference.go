package database

import (
	"database/sql"

	"alandalus-portal/app/models"
)

// Departments and programs are the reference lists behind the dropdowns that
// populate department_id / program_id on other entities.

func CreateDepartment(db *sql.DB, d *models.Department) error {
	query := `INSERT INTO departments (name_ar, name_en) VALUES ($1, $2) RETURNING id, created_at`
	return db.QueryRow(query, d.NameAr, d.NameEn).Scan(&d.ID, &d.CreatedAt)
}

func GetDepartments(db *sql.DB) ([]models.Department, error) {
	rows, err := db.Query(`SELECT id, name_ar, name_en, created_at FROM departments ORDER BY name_ar`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.NameAr, &d.NameEn, &d.CreatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func DeleteDepartment(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateProgram(db *sql.DB, p *models.Program) error {
	query := `INSERT INTO programs (name_ar, name_en, department_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	return db.QueryRow(query, p.NameAr, p.NameEn, p.DepartmentID).Scan(&p.ID, &p.CreatedAt)
}

func GetPrograms(db *sql.DB) ([]models.Program, error) {
	rows, err := db.Query(`SELECT id, name_ar, name_en, department_id, created_at FROM programs ORDER BY name_ar`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.NameAr, &p.NameEn, &p.DepartmentID, &p.CreatedAt); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func DeleteProgram(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
