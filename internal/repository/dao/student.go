package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrStudentRegNumberExists = errors.New("registration number already exists")
	ErrStudentNotFound        = errors.New("student not found")
)

type Student struct {
	ID uint `gorm:"primaryKey"`

	RegNumber string `gorm:"unique;not null"`
	FullName  string `gorm:"not null"`
	Email     string
	Password  string `gorm:"not null"`

	MealBalance int `gorm:"not null;default:0"`
	ImageURL    string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StudentDAO struct {
	db *gorm.DB
}

func NewStudentDAO(db *gorm.DB) *StudentDAO {
	return &StudentDAO{
		db: db,
	}
}

func (d *StudentDAO) Insert(ctx context.Context, student Student) (Student, error) {
	result := d.db.WithContext(ctx).Create(&student)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_students_reg_number"`) {
			return Student{}, ErrStudentRegNumberExists
		}

		return Student{}, result.Error
	}

	return student, nil
}

func (d *StudentDAO) FindByID(ctx context.Context, id uint) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).First(&student, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

// FindByIDAndRegNumber resolves a student by both keys, as presented in a
// scanned claim. A mismatch in either is a miss.
func (d *StudentDAO) FindByIDAndRegNumber(ctx context.Context, id uint, regNumber string) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).Where("id = ? AND reg_number = ?", id, regNumber).First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

func (d *StudentDAO) FindByRegNumber(ctx context.Context, regNumber string) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).Where("reg_number = ?", regNumber).First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

func (d *StudentDAO) FindAll(ctx context.Context) ([]Student, error) {
	var students []Student

	result := d.db.WithContext(ctx).Order("full_name asc").Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}

	return students, nil
}

// AddMealBalance shifts the stored counter by delta. Only the payment
// collaborator calls this; dashboard balances are replayed from the ledger
// instead of reading the column.
func (d *StudentDAO) AddMealBalance(ctx context.Context, id uint, delta int) error {
	result := d.db.WithContext(ctx).
		Model(&Student{}).
		Where("id = ?", id).
		Update("meal_balance", gorm.Expr("meal_balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}

	return nil
}
