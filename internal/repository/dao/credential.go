package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrQRCodeNotFound    = errors.New("qr code not found")
	ErrQRCodeAlreadyUsed = errors.New("qr code already consumed")
)

type QRCode struct {
	ID uint `gorm:"primaryKey"`

	StudentID uint   `gorm:"not null;index:idx_qr_student_meal,priority:1"`
	MealType  string `gorm:"not null;index:idx_qr_student_meal,priority:2"`

	QRData     string `gorm:"not null"`
	QRImageURL string

	ExpiresAt time.Time `gorm:"not null"`
	Consumed  bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}

type QRCodeDAO struct {
	db *gorm.DB
}

func NewQRCodeDAO(db *gorm.DB) *QRCodeDAO {
	return &QRCodeDAO{
		db: db,
	}
}

func (d *QRCodeDAO) Insert(ctx context.Context, qr QRCode) (QRCode, error) {
	result := d.db.WithContext(ctx).Create(&qr)
	if result.Error != nil {
		return QRCode{}, result.Error
	}

	return qr, nil
}

// FindRecent returns up to limit newest-first credentials for the pair.
// Issuance scans these for one minted inside the current window.
func (d *QRCodeDAO) FindRecent(ctx context.Context, studentID uint, mealType string, limit int) ([]QRCode, error) {
	var rows []QRCode

	result := d.db.WithContext(ctx).
		Where("student_id = ? AND meal_type = ?", studentID, mealType).
		Order("created_at desc").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// FindActive returns the unconsumed, unexpired credential for the pair.
func (d *QRCodeDAO) FindActive(ctx context.Context, studentID uint, mealType string, now time.Time) (QRCode, error) {
	var qr QRCode

	result := d.db.WithContext(ctx).
		Where("student_id = ? AND meal_type = ? AND consumed = ? AND expires_at > ?",
			studentID, mealType, false, now).
		Order("created_at desc").
		First(&qr)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return QRCode{}, ErrQRCodeNotFound
		}

		return QRCode{}, result.Error
	}

	return qr, nil
}

// Consume flips consumed to true, but only if it is still false. Of two
// racing scans, exactly one sees a row affected; the other gets
// ErrQRCodeAlreadyUsed.
func (d *QRCodeDAO) Consume(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&QRCode{}).
		Where("id = ? AND consumed = ?", id, false).
		Update("consumed", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrQRCodeAlreadyUsed
	}

	return nil
}
