package services

import (
	"database/sql"
	"fmt"
	"log"

	"alandalus-portal/app/database"
	"alandalus-portal/app/models"
)

// Accounts is the auth boundary: account creation/deletion and role rows.
// It is independently failable from the profile store, which is why
// provisioning runs as a compensating sequence rather than a transaction.
type Accounts interface {
	CreateAccount(user *models.User) error
	DeleteAccount(userID string) error
	AssignRole(userID, role string) error
}

// Profiles is the profile-row side of provisioning.
type Profiles interface {
	InsertTeacher(t *models.Teacher) error
	DeleteTeacher(id string) error
	InsertStudent(s *models.Student) error
	DeleteStudent(id string) error
	RecordFailure(kind, userID, email, phase, failure string) error
}

// ProvisionError reports which phase of a composite creation failed and
// whether the earlier phases were successfully rolled back. When Compensated
// is false the partial state has been recorded for manual reconciliation.
type ProvisionError struct {
	Phase       string
	Compensated bool
	Err         error
}

func (e *ProvisionError) Error() string {
	if e.Compensated {
		return fmt.Sprintf("provisioning failed at %s phase (rolled back): %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("provisioning failed at %s phase, partial state recorded for reconciliation: %v", e.Phase, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// Provisioner creates composite entities that span the auth boundary and the
// profile tables.
type Provisioner struct {
	accounts Accounts
	profiles Profiles
}

func NewProvisioner(accounts Accounts, profiles Profiles) *Provisioner {
	return &Provisioner{accounts: accounts, profiles: profiles}
}

// CreateTeacher provisions a teacher: auth account, then profile row. On a
// profile failure the account is deleted; if that compensation fails too,
// the orphaned account is recorded for manual cleanup.
func (p *Provisioner) CreateTeacher(user *models.User, teacher *models.Teacher) error {
	if err := p.accounts.CreateAccount(user); err != nil {
		return &ProvisionError{Phase: "account", Compensated: true, Err: err}
	}

	teacher.UserID = user.ID
	if err := p.profiles.InsertTeacher(teacher); err != nil {
		if compErr := p.accounts.DeleteAccount(user.ID); compErr != nil {
			log.Printf("Teacher provisioning compensation failed for %s: %v", user.Email, compErr)
			if recErr := p.profiles.RecordFailure("teacher", user.ID, user.Email, "profile", err.Error()); recErr != nil {
				log.Printf("Failed to record provisioning failure: %v", recErr)
			}
			return &ProvisionError{Phase: "profile", Compensated: false, Err: err}
		}
		return &ProvisionError{Phase: "profile", Compensated: true, Err: err}
	}

	return nil
}

// CreateStudent provisions a student: auth account, profile row, then role
// assignment — three sequential, independently-failable calls. A failure in
// a later phase rolls back the earlier ones in reverse order.
func (p *Provisioner) CreateStudent(user *models.User, student *models.Student) error {
	if err := p.accounts.CreateAccount(user); err != nil {
		return &ProvisionError{Phase: "account", Compensated: true, Err: err}
	}

	student.UserID = user.ID
	if err := p.profiles.InsertStudent(student); err != nil {
		if compErr := p.accounts.DeleteAccount(user.ID); compErr != nil {
			log.Printf("Student provisioning compensation failed for %s: %v", user.Email, compErr)
			if recErr := p.profiles.RecordFailure("student", user.ID, user.Email, "profile", err.Error()); recErr != nil {
				log.Printf("Failed to record provisioning failure: %v", recErr)
			}
			return &ProvisionError{Phase: "profile", Compensated: false, Err: err}
		}
		return &ProvisionError{Phase: "profile", Compensated: true, Err: err}
	}

	if err := p.accounts.AssignRole(user.ID, "student"); err != nil {
		profErr := p.profiles.DeleteStudent(student.ID)
		acctErr := p.accounts.DeleteAccount(user.ID)
		if profErr != nil || acctErr != nil {
			log.Printf("Student provisioning compensation failed for %s: profile=%v account=%v", user.Email, profErr, acctErr)
			if recErr := p.profiles.RecordFailure("student", user.ID, user.Email, "role", err.Error()); recErr != nil {
				log.Printf("Failed to record provisioning failure: %v", recErr)
			}
			return &ProvisionError{Phase: "role", Compensated: false, Err: err}
		}
		return &ProvisionError{Phase: "role", Compensated: true, Err: err}
	}

	return nil
}

// dbAccounts and dbProfiles back the interfaces with the database package.

type dbAccounts struct{ db *sql.DB }

func (a dbAccounts) CreateAccount(user *models.User) error { return database.CreateUser(a.db, user) }
func (a dbAccounts) DeleteAccount(userID string) error     { return database.DeleteUser(a.db, userID) }
func (a dbAccounts) AssignRole(userID, role string) error  { return database.AssignRole(a.db, userID, role) }

type dbProfiles struct{ db *sql.DB }

func (p dbProfiles) InsertTeacher(t *models.Teacher) error { return database.InsertTeacherProfile(p.db, t) }
func (p dbProfiles) DeleteTeacher(id string) error { return database.DeleteTeacherProfile(p.db, id) }
func (p dbProfiles) InsertStudent(s *models.Student) error { return database.InsertStudentProfile(p.db, s) }
func (p dbProfiles) DeleteStudent(id string) error { return database.DeleteStudentProfile(p.db, id) }
func (p dbProfiles) RecordFailure(kind, userID, email, phase, failure string) error {
	return database.RecordProvisioningFailure(p.db, kind, userID, email, phase, failure)
}

// NewDBProvisioner wires the provisioner to the live database.
func NewDBProvisioner(db *sql.DB) *Provisioner {
	return NewProvisioner(dbAccounts{db}, dbProfiles{db})
}
