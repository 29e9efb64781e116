package database

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when the targeted row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an update carries a stale updated_at
	// stamp: the row was changed by someone else since it was read.
	ErrConflict = errors.New("record was modified by another user")
)

// resolveMissedUpdate decides whether an update that matched zero rows hit a
// missing row or a concurrent edit.
func resolveMissedUpdate(db *sql.DB, table, id string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM ` + table + ` WHERE id = $1)`
	if err := db.QueryRow(query, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConflict
}
