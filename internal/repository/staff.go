package repository

import (
	"context"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository/dao"
)

var ErrStaffNotFound = dao.ErrStaffNotFound

type StaffDAO interface {
	Insert(ctx context.Context, staff dao.Staff) (dao.Staff, error)
	FindByID(ctx context.Context, id uint) (dao.Staff, error)
	FindByStaffID(ctx context.Context, staffID string) (dao.Staff, error)
}

type StaffRepository struct {
	dao StaffDAO
}

func NewStaffRepository(dao StaffDAO) *StaffRepository {
	return &StaffRepository{
		dao: dao,
	}
}

func (r *StaffRepository) daoToDomain(s dao.Staff) domain.Staff {
	return domain.Staff{
		ID:        s.ID,
		StaffID:   s.StaffID,
		FullName:  s.FullName,
		Email:     s.Email,
		Password:  s.Password,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
	}
}

func (r *StaffRepository) Create(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	created, err := r.dao.Insert(ctx, dao.Staff{
		StaffID:  staff.StaffID,
		FullName: staff.FullName,
		Email:    staff.Email,
		Password: staff.Password,
		Role:     staff.Role,
	})
	if err != nil {
		return domain.Staff{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uint) (domain.Staff, error) {
	staff, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Staff{}, err
	}

	return r.daoToDomain(staff), nil
}

func (r *StaffRepository) FindByStaffID(ctx context.Context, staffID string) (domain.Staff, error) {
	staff, err := r.dao.FindByStaffID(ctx, staffID)
	if err != nil {
		return domain.Staff{}, err
	}

	return r.daoToDomain(staff), nil
}
