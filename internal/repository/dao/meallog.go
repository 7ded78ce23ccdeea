package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type MealLog struct {
	ID uint `gorm:"primaryKey"`

	StudentID uint   `gorm:"not null;index"`
	StaffID   uint   `gorm:"not null"`
	MealType  string `gorm:"not null"`
	QRCodeID  uint   `gorm:"not null"`

	ServedAt time.Time `gorm:"not null"`
}

func (MealLog) TableName() string {
	return "meal_logs"
}

type MealLogDAO struct {
	db *gorm.DB
}

func NewMealLogDAO(db *gorm.DB) *MealLogDAO {
	return &MealLogDAO{
		db: db,
	}
}

func (d *MealLogDAO) Insert(ctx context.Context, log MealLog) (MealLog, error) {
	result := d.db.WithContext(ctx).Create(&log)
	if result.Error != nil {
		return MealLog{}, result.Error
	}

	return log, nil
}

func (d *MealLogDAO) FindByStudentID(ctx context.Context, studentID uint, limit int) ([]MealLog, error) {
	var logs []MealLog

	result := d.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("served_at desc").
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}

func (d *MealLogDAO) FindRecent(ctx context.Context, limit int) ([]MealLog, error) {
	var logs []MealLog

	result := d.db.WithContext(ctx).
		Order("served_at desc").
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}

// CountByStudentID is half of the balance replay: meals served so far.
func (d *MealLogDAO) CountByStudentID(ctx context.Context, studentID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&MealLog{}).
		Where("student_id = ?", studentID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
