package repository

import (
	"context"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository/dao"
)

type MealLogDAO interface {
	Insert(ctx context.Context, log dao.MealLog) (dao.MealLog, error)
	FindByStudentID(ctx context.Context, studentID uint, limit int) ([]dao.MealLog, error)
	FindRecent(ctx context.Context, limit int) ([]dao.MealLog, error)
	CountByStudentID(ctx context.Context, studentID uint) (int64, error)
}

type MealLogRepository struct {
	dao MealLogDAO
}

func NewMealLogRepository(dao MealLogDAO) *MealLogRepository {
	return &MealLogRepository{
		dao: dao,
	}
}

func (r *MealLogRepository) daoToDomain(log dao.MealLog) domain.MealLog {
	return domain.MealLog{
		ID:           log.ID,
		StudentID:    log.StudentID,
		StaffID:      log.StaffID,
		MealType:     domain.MealType(log.MealType),
		CredentialID: log.QRCodeID,
		ServedAt:     log.ServedAt,
	}
}

func (r *MealLogRepository) Create(ctx context.Context, log domain.MealLog) (domain.MealLog, error) {
	created, err := r.dao.Insert(ctx, dao.MealLog{
		StudentID: log.StudentID,
		StaffID:   log.StaffID,
		MealType:  string(log.MealType),
		QRCodeID:  log.CredentialID,
		ServedAt:  log.ServedAt,
	})
	if err != nil {
		return domain.MealLog{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *MealLogRepository) FindByStudentID(ctx context.Context, studentID uint, limit int) ([]domain.MealLog, error) {
	logs, err := r.dao.FindByStudentID(ctx, studentID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MealLog, len(logs))
	for i, log := range logs {
		result[i] = r.daoToDomain(log)
	}

	return result, nil
}

func (r *MealLogRepository) FindRecent(ctx context.Context, limit int) ([]domain.MealLog, error) {
	logs, err := r.dao.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MealLog, len(logs))
	for i, log := range logs {
		result[i] = r.daoToDomain(log)
	}

	return result, nil
}

func (r *MealLogRepository) CountByStudentID(ctx context.Context, studentID uint) (int64, error) {
	return r.dao.CountByStudentID(ctx, studentID)
}
