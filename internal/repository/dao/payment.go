package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID uint `gorm:"primaryKey"`

	StudentID  uint    `gorm:"not null;index"`
	Amount     float64 `gorm:"not null"`
	MealsAdded int     `gorm:"not null"`

	PaymentDate time.Time `gorm:"not null"`
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByStudentID(ctx context.Context, studentID uint) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("payment_date desc").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *PaymentDAO) FindAll(ctx context.Context) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).Order("payment_date desc").Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

// SumMealsAdded is the other half of the balance replay: total credits
// purchased.
func (d *PaymentDAO) SumMealsAdded(ctx context.Context, studentID uint) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).
		Model(&Payment{}).
		Where("student_id = ?", studentID).
		Select("coalesce(sum(meals_added), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
