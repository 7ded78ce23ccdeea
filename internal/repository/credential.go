package repository

import (
	"context"
	"time"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository/dao"
)

var (
	ErrCredentialNotFound    = dao.ErrQRCodeNotFound
	ErrCredentialAlreadyUsed = dao.ErrQRCodeAlreadyUsed
)

type QRCodeDAO interface {
	Insert(ctx context.Context, qr dao.QRCode) (dao.QRCode, error)
	FindRecent(ctx context.Context, studentID uint, mealType string, limit int) ([]dao.QRCode, error)
	FindActive(ctx context.Context, studentID uint, mealType string, now time.Time) (dao.QRCode, error)
	Consume(ctx context.Context, id uint) error
}

type CredentialRepository struct {
	dao QRCodeDAO
}

func NewCredentialRepository(dao QRCodeDAO) *CredentialRepository {
	return &CredentialRepository{
		dao: dao,
	}
}

func (r *CredentialRepository) daoToDomain(qr dao.QRCode) domain.Credential {
	return domain.Credential{
		ID:        qr.ID,
		StudentID: qr.StudentID,
		MealType:  domain.MealType(qr.MealType),
		Payload:   qr.QRData,
		ImageURL:  qr.QRImageURL,
		IssuedAt:  qr.CreatedAt,
		ExpiresAt: qr.ExpiresAt,
		Consumed:  qr.Consumed,
	}
}

func (r *CredentialRepository) Create(ctx context.Context, cred domain.Credential) (domain.Credential, error) {
	created, err := r.dao.Insert(ctx, dao.QRCode{
		StudentID:  cred.StudentID,
		MealType:   string(cred.MealType),
		QRData:     cred.Payload,
		QRImageURL: cred.ImageURL,
		ExpiresAt:  cred.ExpiresAt,
		CreatedAt:  cred.IssuedAt,
	})
	if err != nil {
		return domain.Credential{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *CredentialRepository) FindRecent(ctx context.Context, studentID uint, mealType domain.MealType, limit int) ([]domain.Credential, error) {
	rows, err := r.dao.FindRecent(ctx, studentID, string(mealType), limit)
	if err != nil {
		return nil, err
	}

	creds := make([]domain.Credential, len(rows))
	for i, qr := range rows {
		creds[i] = r.daoToDomain(qr)
	}

	return creds, nil
}

func (r *CredentialRepository) FindActive(ctx context.Context, studentID uint, mealType domain.MealType, now time.Time) (domain.Credential, error) {
	qr, err := r.dao.FindActive(ctx, studentID, string(mealType), now)
	if err != nil {
		return domain.Credential{}, err
	}

	return r.daoToDomain(qr), nil
}

func (r *CredentialRepository) Consume(ctx context.Context, id uint) error {
	return r.dao.Consume(ctx, id)
}
