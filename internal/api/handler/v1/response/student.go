package response

import (
	"time"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/service"
)

type BalanceResponse struct {
	StudentID uint `json:"student_id"`
	Balance   int  `json:"balance"`
}

type MealHistoryResponse struct {
	Meals []domain.MealLog `json:"meals"`
}

// CredentialResponse mirrors what the dashboard renders: either the active
// window's QR, or when the next window opens. The countdown is derived from
// expires_at by the client on every render.
type CredentialResponse struct {
	Active    bool            `json:"active"`
	MealType  domain.MealType `json:"meal_type,omitempty"`
	ImageURL  string          `json:"qr_image_url,omitempty"`
	Payload   string          `json:"qr_data,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	NextMeal  domain.MealType `json:"next_meal,omitempty"`
	NextStart *time.Time      `json:"next_meal_start,omitempty"`
}

func NewCredentialResponse(display service.CredentialDisplay) CredentialResponse {
	resp := CredentialResponse{
		Active:   display.Active,
		MealType: display.MealType,
		ImageURL: display.ImageURL,
		Payload:  display.Payload,
		NextMeal: display.NextMeal,
	}

	if !display.ExpiresAt.IsZero() {
		expiresAt := display.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}

	if !display.NextStart.IsZero() {
		nextStart := display.NextStart
		resp.NextStart = &nextStart
	}

	return resp
}
