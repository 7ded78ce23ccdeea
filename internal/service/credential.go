package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/schedule"
)

const (
	// reuseLookback bounds how many recent credentials are scanned for one
	// issued inside the current window.
	reuseLookback = 10

	qrImageSize = 600
)

type CredentialRepository interface {
	Create(ctx context.Context, cred domain.Credential) (domain.Credential, error)
	FindRecent(ctx context.Context, studentID uint, mealType domain.MealType, limit int) ([]domain.Credential, error)
}

type CredentialStudentRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Student, error)
}

type ImageRenderer interface {
	Render(text string, size int) ([]byte, error)
}

type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// CredentialDisplay is the state a student's dashboard shows: either the
// current window's credential, or when the next window opens.
type CredentialDisplay struct {
	Active     bool              `json:"active"`
	MealType   domain.MealType   `json:"meal_type,omitempty"`
	ImageURL   string            `json:"qr_image_url,omitempty"`
	Payload    string            `json:"qr_data,omitempty"`
	ExpiresAt  time.Time         `json:"expires_at,omitempty"`
	NextMeal   domain.MealType   `json:"next_meal,omitempty"`
	NextStart  time.Time         `json:"next_meal_start,omitempty"`
	Credential domain.Credential `json:"-"`
}

// CredentialService issues one time-scoped, single-use credential per
// student per meal window, reusing an already-minted one when present.
type CredentialService struct {
	sched    *schedule.Schedule
	students CredentialStudentRepository
	creds    CredentialRepository
	renderer ImageRenderer
	images   ImageStore
}

func NewCredentialService(
	sched *schedule.Schedule,
	students CredentialStudentRepository,
	creds CredentialRepository,
	renderer ImageRenderer,
	images ImageStore,
) *CredentialService {
	return &CredentialService{
		sched:    sched,
		students: students,
		creds:    creds,
		renderer: renderer,
		images:   images,
	}
}

// EnsureActive returns the credential to display for now. Outside any meal
// window it returns an inactive display pointing at the next window. Inside
// a window it reuses the credential minted during this occurrence if one
// exists (consumed or not), and mints, renders and persists a fresh one
// otherwise.
//
// Lookup and insert are separate store calls, so two concurrent callers can
// both miss and each mint a credential. A partial unique index on
// (student, meal, day) would close the gap.
func (s *CredentialService) EnsureActive(ctx context.Context, studentID uint, now time.Time) (CredentialDisplay, error) {
	meal, ok := s.sched.ActiveMeal(now)
	if !ok {
		nextMeal, nextStart := s.sched.NextMeal(now)

		return CredentialDisplay{
			Active:    false,
			NextMeal:  nextMeal,
			NextStart: nextStart,
		}, nil
	}

	windowStart, windowEnd, err := s.sched.Window(meal, now)
	if err != nil {
		return CredentialDisplay{}, fmt.Errorf("s.sched.Window -> %w", err)
	}

	recent, err := s.creds.FindRecent(ctx, studentID, meal, reuseLookback)
	if err != nil {
		return CredentialDisplay{}, fmt.Errorf("s.creds.FindRecent -> %w", err)
	}

	// Reuse the first credential issued during today's occurrence of this
	// window, whether or not it has been consumed.
	for _, cred := range recent {
		if !cred.IssuedAt.Before(windowStart) {
			return displayFor(cred), nil
		}
	}

	cred, err := s.mint(ctx, studentID, meal, windowEnd, now)
	if err != nil {
		return CredentialDisplay{}, err
	}

	return displayFor(cred), nil
}

func (s *CredentialService) mint(ctx context.Context, studentID uint, meal domain.MealType, windowEnd, now time.Time) (domain.Credential, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("s.students.FindByID -> %w", err)
	}

	claim := domain.NewClaim(student.ID, student.RegNumber, meal, windowEnd)

	payload, err := claim.Encode()
	if err != nil {
		return domain.Credential{}, fmt.Errorf("claim.Encode -> %w", err)
	}

	png, err := s.renderer.Render(payload, qrImageSize)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("s.renderer.Render -> %w", err)
	}

	name := fmt.Sprintf("qr_%d_%s_%s.png", student.ID, meal, now.Format("2006-01-02"))

	imageURL, err := s.images.Save(ctx, name, png)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("s.images.Save -> %w", err)
	}

	cred, err := s.creds.Create(ctx, domain.Credential{
		StudentID: student.ID,
		MealType:  meal,
		Payload:   payload,
		ImageURL:  imageURL,
		IssuedAt:  now,
		ExpiresAt: windowEnd,
	})
	if err != nil {
		return domain.Credential{}, fmt.Errorf("s.creds.Create -> %w", err)
	}

	zap.L().Info("minted meal credential",
		zap.Uint("student_id", student.ID),
		zap.String("meal_type", string(meal)),
		zap.Time("expires_at", windowEnd),
	)

	return cred, nil
}

func displayFor(cred domain.Credential) CredentialDisplay {
	return CredentialDisplay{
		Active:     true,
		MealType:   cred.MealType,
		ImageURL:   cred.ImageURL,
		Payload:    cred.Payload,
		ExpiresAt:  cred.ExpiresAt,
		Credential: cred,
	}
}
