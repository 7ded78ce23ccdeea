package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
)

type LedgerPaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByStudentID(ctx context.Context, studentID uint) ([]domain.Payment, error)
	FindAll(ctx context.Context) ([]domain.Payment, error)
	SumMealsAdded(ctx context.Context, studentID uint) (int64, error)
}

type LedgerMealLogRepository interface {
	FindByStudentID(ctx context.Context, studentID uint, limit int) ([]domain.MealLog, error)
	FindRecent(ctx context.Context, limit int) ([]domain.MealLog, error)
	CountByStudentID(ctx context.Context, studentID uint) (int64, error)
}

type LedgerStudentRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Student, error)
	AddMealBalance(ctx context.Context, id uint, delta int) error
}

// LedgerService derives meal balances by replaying the payment and meal-log
// history, and records payments.
type LedgerService struct {
	payments LedgerPaymentRepository
	mealLogs LedgerMealLogRepository
	students LedgerStudentRepository
}

func NewLedgerService(
	payments LedgerPaymentRepository,
	mealLogs LedgerMealLogRepository,
	students LedgerStudentRepository,
) *LedgerService {
	return &LedgerService{
		payments: payments,
		mealLogs: mealLogs,
		students: students,
	}
}

// Balance is credits purchased minus meals served, replayed from the ledger
// on every call. The stored meal_balance column is deliberately not read.
func (s *LedgerService) Balance(ctx context.Context, studentID uint) (int, error) {
	credits, err := s.payments.SumMealsAdded(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("s.payments.SumMealsAdded -> %w", err)
	}

	served, err := s.mealLogs.CountByStudentID(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("s.mealLogs.CountByStudentID -> %w", err)
	}

	return int(credits - served), nil
}

func (s *LedgerService) MealHistory(ctx context.Context, studentID uint, limit int) ([]domain.MealLog, error) {
	logs, err := s.mealLogs.FindByStudentID(ctx, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("s.mealLogs.FindByStudentID -> %w", err)
	}

	return logs, nil
}

func (s *LedgerService) RecentMealLogs(ctx context.Context, limit int) ([]domain.MealLog, error) {
	logs, err := s.mealLogs.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.mealLogs.FindRecent -> %w", err)
	}

	return logs, nil
}

// RecordPayment appends a payment row and bumps the stored counter, as the
// admin screen does. The dashboard balance still comes from Balance.
func (s *LedgerService) RecordPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if _, err := s.students.FindByID(ctx, payment.StudentID); err != nil {
		return domain.Payment{}, err
	}

	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.payments.Create -> %w", err)
	}

	if err = s.students.AddMealBalance(ctx, payment.StudentID, payment.MealsAdded); err != nil {
		return domain.Payment{}, fmt.Errorf("s.students.AddMealBalance -> %w", err)
	}

	return created, nil
}

func (s *LedgerService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.payments.FindAll -> %w", err)
	}

	return payments, nil
}
