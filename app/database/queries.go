package database

import (
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"alandalus-portal/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, nil
}

// CreateUser creates an auth account with a hashed password.
func CreateUser(db *sql.DB, user *models.User) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (email, password, first_name, last_name, phone, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Email, hashed, user.FirstName, user.LastName, user.Phone).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
}

// DeleteUser hard-deletes an auth account. Used by provisioning compensation
// and by nothing else; normal account removal is a soft deactivation.
func DeleteUser(db *sql.DB, userID string) error {
	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	return err
}

// EnsureRole returns the id of the named role, creating it if missing.
func EnsureRole(db *sql.DB, name string) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM roles WHERE name = $1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`INSERT INTO roles (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	}
	return id, err
}

// AssignRole links a user to a role, creating the role if needed.
func AssignRole(db *sql.DB, userID, roleName string) error {
	roleID, err := EnsureRole(db, roleName)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, roleID)
	return err
}

// RemoveRole unlinks a user from a role.
func RemoveRole(db *sql.DB, userID, roleName string) error {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role_id = (SELECT id FROM roles WHERE name = $2)`
	_, err := db.Exec(query, userID, roleName)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

// RecordProvisioningFailure stores a partial provisioning state for manual
// reconciliation when compensation itself failed.
func RecordProvisioningFailure(db *sql.DB, kind, userID, email, phase, failure string) error {
	var uid interface{}
	if userID != "" {
		uid = userID
	}
	query := `INSERT INTO provisioning_failures (kind, user_id, email, phase, failure)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(query, kind, uid, email, phase, failure)
	return err
}
