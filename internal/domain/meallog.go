package domain

import "time"

// MealLog is the append-only record of one served meal. It is created only
// as a side effect of successful redemption and never mutated.
type MealLog struct {
	ID           uint      `json:"id"`
	StudentID    uint      `json:"student_id"`
	StaffID      uint      `json:"staff_id"`
	MealType     MealType  `json:"meal_type"`
	CredentialID uint      `json:"qr_code_id"`
	ServedAt     time.Time `json:"served_at"`
}
