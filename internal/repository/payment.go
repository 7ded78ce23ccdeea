package repository

import (
	"context"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository/dao"
)

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByStudentID(ctx context.Context, studentID uint) ([]dao.Payment, error)
	FindAll(ctx context.Context) ([]dao.Payment, error)
	SumMealsAdded(ctx context.Context, studentID uint) (int64, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:          p.ID,
		StudentID:   p.StudentID,
		Amount:      p.Amount,
		MealsAdded:  p.MealsAdded,
		PaymentDate: p.PaymentDate,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, dao.Payment{
		StudentID:   payment.StudentID,
		Amount:      payment.Amount,
		MealsAdded:  payment.MealsAdded,
		PaymentDate: payment.PaymentDate,
	})
	if err != nil {
		return domain.Payment{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) FindByStudentID(ctx context.Context, studentID uint) ([]domain.Payment, error) {
	payments, err := r.dao.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Payment, len(payments))
	for i, p := range payments {
		result[i] = r.daoToDomain(p)
	}

	return result, nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	payments, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Payment, len(payments))
	for i, p := range payments {
		result[i] = r.daoToDomain(p)
	}

	return result, nil
}

func (r *PaymentRepository) SumMealsAdded(ctx context.Context, studentID uint) (int64, error) {
	return r.dao.SumMealsAdded(ctx, studentID)
}
