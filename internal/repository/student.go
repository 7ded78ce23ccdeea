package repository

import (
	"context"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository/dao"
)

var (
	ErrStudentNotFound        = dao.ErrStudentNotFound
	ErrStudentRegNumberExists = dao.ErrStudentRegNumberExists
)

type StudentDAO interface {
	Insert(ctx context.Context, student dao.Student) (dao.Student, error)
	FindByID(ctx context.Context, id uint) (dao.Student, error)
	FindByIDAndRegNumber(ctx context.Context, id uint, regNumber string) (dao.Student, error)
	FindByRegNumber(ctx context.Context, regNumber string) (dao.Student, error)
	FindAll(ctx context.Context) ([]dao.Student, error)
	AddMealBalance(ctx context.Context, id uint, delta int) error
}

type StudentRepository struct {
	dao StudentDAO
}

func NewStudentRepository(dao StudentDAO) *StudentRepository {
	return &StudentRepository{
		dao: dao,
	}
}

func (r *StudentRepository) daoToDomain(s dao.Student) domain.Student {
	return domain.Student{
		ID:          s.ID,
		RegNumber:   s.RegNumber,
		FullName:    s.FullName,
		Email:       s.Email,
		Password:    s.Password,
		MealBalance: s.MealBalance,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
	}
}

func (r *StudentRepository) Create(ctx context.Context, student domain.Student) (domain.Student, error) {
	created, err := r.dao.Insert(ctx, dao.Student{
		RegNumber:   student.RegNumber,
		FullName:    student.FullName,
		Email:       student.Email,
		Password:    student.Password,
		MealBalance: student.MealBalance,
		ImageURL:    student.ImageURL,
	})
	if err != nil {
		return domain.Student{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id uint) (domain.Student, error) {
	student, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Student{}, err
	}

	return r.daoToDomain(student), nil
}

func (r *StudentRepository) FindByIDAndRegNumber(ctx context.Context, id uint, regNumber string) (domain.Student, error) {
	student, err := r.dao.FindByIDAndRegNumber(ctx, id, regNumber)
	if err != nil {
		return domain.Student{}, err
	}

	return r.daoToDomain(student), nil
}

func (r *StudentRepository) FindByRegNumber(ctx context.Context, regNumber string) (domain.Student, error) {
	student, err := r.dao.FindByRegNumber(ctx, regNumber)
	if err != nil {
		return domain.Student{}, err
	}

	return r.daoToDomain(student), nil
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]domain.Student, error) {
	students, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Student, len(students))
	for i, s := range students {
		result[i] = r.daoToDomain(s)
	}

	return result, nil
}

func (r *StudentRepository) AddMealBalance(ctx context.Context, id uint, delta int) error {
	return r.dao.AddMealBalance(ctx, id, delta)
}
