package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestAuthService_LoginStudent(t *testing.T) {
	students := newFakeAuthStudentRepo(domain.Student{
		ID:        1,
		RegNumber: "BU/2024/001",
		FullName:  "Jane Doe",
		Password:  hashPassword(t, "secret123"),
	})
	svc := NewAuthService(students, newFakeAuthStaffRepo())

	t.Run("valid credentials", func(t *testing.T) {
		student, err := svc.LoginStudent(context.Background(), "BU/2024/001", "secret123")
		require.NoError(t, err)
		assert.Equal(t, uint(1), student.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginStudent(context.Background(), "BU/2024/001", "nope")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown registration number", func(t *testing.T) {
		_, err := svc.LoginStudent(context.Background(), "BU/2024/404", "secret123")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestAuthService_LoginStaff(t *testing.T) {
	staff := newFakeAuthStaffRepo(domain.Staff{
		ID:       7,
		StaffID:  "STF-001",
		Role:     "staff",
		Password: hashPassword(t, "secret123"),
	})
	svc := NewAuthService(newFakeAuthStudentRepo(), staff)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.LoginStaff(context.Background(), "STF-001", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "staff", got.Role)
	})

	t.Run("unknown staff id", func(t *testing.T) {
		_, err := svc.LoginStaff(context.Background(), "STF-404", "secret123")
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestAuthService_EnrollStudent(t *testing.T) {
	students := newFakeAuthStudentRepo()
	svc := NewAuthService(students, newFakeAuthStaffRepo())

	created, err := svc.EnrollStudent(context.Background(), domain.Student{
		RegNumber: "BU/2024/002",
		FullName:  "John Doe",
		Password:  "plaintext1",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// The stored password must be a hash, never the plaintext.
	stored, err := students.FindByRegNumber(context.Background(), "BU/2024/002")
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext1")))

	_, err = svc.EnrollStudent(context.Background(), domain.Student{
		RegNumber: "BU/2024/002",
		FullName:  "Duplicate",
		Password:  "plaintext1",
	})
	assert.ErrorIs(t, err, ErrStudentRegNumberExists)
}

func TestAuthService_CreateStaff(t *testing.T) {
	staff := newFakeAuthStaffRepo()
	svc := NewAuthService(newFakeAuthStudentRepo(), staff)

	created, err := svc.CreateStaff(context.Background(), domain.Staff{
		StaffID:  "STF-002",
		FullName: "Admin",
		Role:     "admin",
		Password: "plaintext1",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	stored, err := staff.FindByStaffID(context.Background(), "STF-002")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext1")))
}
