package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrStaffNotFound = errors.New("staff member not found")

type Staff struct {
	ID uint `gorm:"primaryKey"`

	StaffID  string `gorm:"unique;not null"`
	FullName string `gorm:"not null"`
	Email    string
	Password string `gorm:"not null"`

	Role string `gorm:"not null"` // "staff" or "admin"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Staff) TableName() string {
	return "staff"
}

type StaffDAO struct {
	db *gorm.DB
}

func NewStaffDAO(db *gorm.DB) *StaffDAO {
	return &StaffDAO{
		db: db,
	}
}

func (d *StaffDAO) Insert(ctx context.Context, staff Staff) (Staff, error) {
	result := d.db.WithContext(ctx).Create(&staff)
	if result.Error != nil {
		return Staff{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindByID(ctx context.Context, id uint) (Staff, error) {
	var staff Staff

	result := d.db.WithContext(ctx).First(&staff, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Staff{}, ErrStaffNotFound
		}

		return Staff{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindByStaffID(ctx context.Context, staffID string) (Staff, error) {
	var staff Staff

	result := d.db.WithContext(ctx).Where("staff_id = ?", staffID).First(&staff)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Staff{}, ErrStaffNotFound
		}

		return Staff{}, result.Error
	}

	return staff, nil
}
