package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository"
)

var (
	ErrStudentNotFound        = repository.ErrStudentNotFound
	ErrStaffNotFound          = repository.ErrStaffNotFound
	ErrStudentRegNumberExists = repository.ErrStudentRegNumberExists
	ErrWrongPassword          = errors.New("wrong password")
)

type AuthStudentRepository interface {
	Create(ctx context.Context, student domain.Student) (domain.Student, error)
	FindByRegNumber(ctx context.Context, regNumber string) (domain.Student, error)
	FindAll(ctx context.Context) ([]domain.Student, error)
}

type AuthStaffRepository interface {
	Create(ctx context.Context, staff domain.Staff) (domain.Staff, error)
	FindByStaffID(ctx context.Context, staffID string) (domain.Staff, error)
}

type AuthService struct {
	students AuthStudentRepository
	staff    AuthStaffRepository
}

func NewAuthService(students AuthStudentRepository, staff AuthStaffRepository) *AuthService {
	return &AuthService{
		students: students,
		staff:    staff,
	}
}

// LoginStudent authenticates a student by registration number.
func (s *AuthService) LoginStudent(ctx context.Context, regNumber, password string) (domain.Student, error) {
	student, err := s.students.FindByRegNumber(ctx, regNumber)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domain.Student{}, ErrStudentNotFound
		}

		return domain.Student{}, fmt.Errorf("s.students.FindByRegNumber -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(password)); err != nil {
		return domain.Student{}, ErrWrongPassword
	}

	return student, nil
}

// LoginStaff authenticates a staff member (or admin) by staff id.
func (s *AuthService) LoginStaff(ctx context.Context, staffID, password string) (domain.Staff, error) {
	staff, err := s.staff.FindByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return domain.Staff{}, ErrStaffNotFound
		}

		return domain.Staff{}, fmt.Errorf("s.staff.FindByStaffID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return domain.Staff{}, ErrWrongPassword
	}

	return staff, nil
}

// EnrollStudent creates a student with a hashed password. Enrollment is
// administrative plumbing; the meal ledger starts at the given balance.
func (s *AuthService) EnrollStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(student.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Student{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	student.Password = string(hash)

	created, err := s.students.Create(ctx, student)
	if err != nil {
		if errors.Is(err, repository.ErrStudentRegNumberExists) {
			return domain.Student{}, ErrStudentRegNumberExists
		}

		return domain.Student{}, fmt.Errorf("s.students.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	students, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.students.FindAll -> %w", err)
	}

	return students, nil
}

func (s *AuthService) CreateStaff(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(staff.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	staff.Password = string(hash)

	created, err := s.staff.Create(ctx, staff)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("s.staff.Create -> %w", err)
	}

	return created, nil
}
