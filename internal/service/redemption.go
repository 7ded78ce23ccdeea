package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository"
)

var (
	ErrInvalidPayload  = errors.New("invalid QR format")
	ErrClaimExpired    = errors.New("QR code has expired")
	ErrCredentialSpent = errors.New("QR already used or invalid")
)

type RedemptionCredentialRepository interface {
	FindActive(ctx context.Context, studentID uint, mealType domain.MealType, now time.Time) (domain.Credential, error)
	Consume(ctx context.Context, id uint) error
}

type RedemptionStudentRepository interface {
	FindByIDAndRegNumber(ctx context.Context, id uint, regNumber string) (domain.Student, error)
}

type RedemptionMealLogRepository interface {
	Create(ctx context.Context, log domain.MealLog) (domain.MealLog, error)
}

// RedemptionService validates scanned payloads and consumes credentials.
type RedemptionService struct {
	students RedemptionStudentRepository
	creds    RedemptionCredentialRepository
	mealLogs RedemptionMealLogRepository
}

func NewRedemptionService(
	students RedemptionStudentRepository,
	creds RedemptionCredentialRepository,
	mealLogs RedemptionMealLogRepository,
) *RedemptionService {
	return &RedemptionService{
		students: students,
		creds:    creds,
		mealLogs: mealLogs,
	}
}

// Redeem runs the scan-time sequence, short-circuiting on the first failed
// check: parse the claim, check its embedded expiry, confirm the student,
// find the stored unconsumed unexpired credential, consume it, append the
// meal log. The claim's expiry is client-controlled at mint time, so the
// stored row's expiry and consumed flag are re-checked independently.
func (s *RedemptionService) Redeem(ctx context.Context, staffID uint, rawPayload string, now time.Time) (domain.ScanResult, error) {
	claim, err := domain.DecodeClaim(rawPayload)
	if err != nil {
		return domain.ScanResult{}, ErrInvalidPayload
	}

	studentID, err := claim.ParseStudentID()
	if err != nil || !claim.MealType.Valid() {
		return domain.ScanResult{}, ErrInvalidPayload
	}

	if !claim.ExpiresAt().After(now) {
		return domain.ScanResult{}, ErrClaimExpired
	}

	student, err := s.students.FindByIDAndRegNumber(ctx, studentID, claim.RegNumber)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domain.ScanResult{}, ErrStudentNotFound
		}

		return domain.ScanResult{}, fmt.Errorf("s.students.FindByIDAndRegNumber -> %w", err)
	}

	cred, err := s.creds.FindActive(ctx, student.ID, claim.MealType, now)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domain.ScanResult{}, ErrCredentialSpent
		}

		return domain.ScanResult{}, fmt.Errorf("s.creds.FindActive -> %w", err)
	}

	if err = s.creds.Consume(ctx, cred.ID); err != nil {
		// Conditional update: a racing scan got here first.
		if errors.Is(err, repository.ErrCredentialAlreadyUsed) {
			return domain.ScanResult{}, ErrCredentialSpent
		}

		return domain.ScanResult{}, fmt.Errorf("s.creds.Consume -> %w", err)
	}

	log, err := s.mealLogs.Create(ctx, domain.MealLog{
		StudentID:    student.ID,
		StaffID:      staffID,
		MealType:     claim.MealType,
		CredentialID: cred.ID,
		ServedAt:     now,
	})
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("s.mealLogs.Create -> %w", err)
	}

	zap.L().Info("meal served",
		zap.Uint("student_id", student.ID),
		zap.Uint("staff_id", staffID),
		zap.String("meal_type", string(claim.MealType)),
		zap.Uint("qr_code_id", cred.ID),
	)

	return domain.ScanResult{
		Success:  true,
		Message:  "Meal served successfully!",
		Icon:     "✅",
		Student:  &student,
		MealType: claim.MealType,
		ServedAt: log.ServedAt,
	}, nil
}
