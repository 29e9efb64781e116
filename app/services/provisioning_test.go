package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alandalus-portal/app/models"
)

type fakeAccounts struct {
	createErr error
	deleteErr error
	roleErr   error

	created []string
	deleted []string
	roles   []string
}

func (f *fakeAccounts) CreateAccount(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = "user-" + user.Email
	f.created = append(f.created, user.ID)
	return nil
}

func (f *fakeAccounts) DeleteAccount(userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, userID)
	return nil
}

func (f *fakeAccounts) AssignRole(userID, role string) error {
	if f.roleErr != nil {
		return f.roleErr
	}
	f.roles = append(f.roles, userID+":"+role)
	return nil
}

type fakeProfiles struct {
	teacherErr error
	studentErr error

	teachers        []string
	students        []string
	deletedStudents []string
	failures        []string
}

func (f *fakeProfiles) InsertTeacher(t *models.Teacher) error {
	if f.teacherErr != nil {
		return f.teacherErr
	}
	t.ID = "teacher-" + t.UserID
	f.teachers = append(f.teachers, t.ID)
	return nil
}

func (f *fakeProfiles) DeleteTeacher(id string) error { return nil }

func (f *fakeProfiles) InsertStudent(s *models.Student) error {
	if f.studentErr != nil {
		return f.studentErr
	}
	s.ID = "student-" + s.UserID
	f.students = append(f.students, s.ID)
	return nil
}

func (f *fakeProfiles) DeleteStudent(id string) error {
	f.deletedStudents = append(f.deletedStudents, id)
	return nil
}

func (f *fakeProfiles) RecordFailure(kind, userID, email, phase, failure string) error {
	f.failures = append(f.failures, kind+":"+phase)
	return nil
}

func TestCreateTeacherHappyPath(t *testing.T) {
	accounts := &fakeAccounts{}
	profiles := &fakeProfiles{}
	p := NewProvisioner(accounts, profiles)

	user := &models.User{Email: "ahmed@alandalus.edu.ye", Password: "secret123"}
	teacher := &models.Teacher{NameAr: "أحمد صالح", Position: models.Lecturer}

	require.NoError(t, p.CreateTeacher(user, teacher))
	assert.Equal(t, user.ID, teacher.UserID)
	assert.Len(t, accounts.created, 1)
	assert.Empty(t, accounts.deleted)
	assert.Len(t, profiles.teachers, 1)
}

func TestCreateTeacherAccountPhaseFails(t *testing.T) {
	accounts := &fakeAccounts{createErr: errors.New("duplicate email")}
	profiles := &fakeProfiles{}
	p := NewProvisioner(accounts, profiles)

	err := p.CreateTeacher(&models.User{Email: "x@y"}, &models.Teacher{})
	require.Error(t, err)

	var pe *ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "account", pe.Phase)
	assert.True(t, pe.Compensated)
	assert.Empty(t, profiles.teachers)
}

func TestCreateTeacherProfilePhaseCompensates(t *testing.T) {
	accounts := &fakeAccounts{}
	profiles := &fakeProfiles{teacherErr: errors.New("department missing")}
	p := NewProvisioner(accounts, profiles)

	err := p.CreateTeacher(&models.User{Email: "x@y"}, &models.Teacher{})
	require.Error(t, err)

	var pe *ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "profile", pe.Phase)
	assert.True(t, pe.Compensated)
	// The orphaned account was deleted.
	assert.Equal(t, accounts.created, accounts.deleted)
	assert.Empty(t, profiles.failures)
}

func TestCreateTeacherCompensationFailureIsRecorded(t *testing.T) {
	accounts := &fakeAccounts{deleteErr: errors.New("auth service down")}
	profiles := &fakeProfiles{teacherErr: errors.New("insert failed")}
	p := NewProvisioner(accounts, profiles)

	err := p.CreateTeacher(&models.User{Email: "x@y"}, &models.Teacher{})
	require.Error(t, err)

	var pe *ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.False(t, pe.Compensated)
	assert.Equal(t, []string{"teacher:profile"}, profiles.failures)
}

func TestCreateStudentHappyPath(t *testing.T) {
	accounts := &fakeAccounts{}
	profiles := &fakeProfiles{}
	p := NewProvisioner(accounts, profiles)

	user := &models.User{Email: "sara@alandalus.edu.ye", Password: "secret123"}
	student := &models.Student{NameAr: "سارة علي", StudentNumber: "2026-0001", Status: models.StudentActive}

	require.NoError(t, p.CreateStudent(user, student))
	assert.Len(t, profiles.students, 1)
	assert.Equal(t, []string{user.ID + ":student"}, accounts.roles)
}

func TestCreateStudentRolePhaseRollsBackProfileAndAccount(t *testing.T) {
	accounts := &fakeAccounts{roleErr: errors.New("role table locked")}
	profiles := &fakeProfiles{}
	p := NewProvisioner(accounts, profiles)

	user := &models.User{Email: "sara@alandalus.edu.ye"}
	student := &models.Student{NameAr: "سارة علي"}

	err := p.CreateStudent(user, student)
	require.Error(t, err)

	var pe *ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "role", pe.Phase)
	assert.True(t, pe.Compensated)
	assert.Equal(t, []string{student.ID}, profiles.deletedStudents)
	assert.Equal(t, accounts.created, accounts.deleted)
}
