package domain

import "time"

// ScanResult is the human-readable outcome of one redemption attempt.
type ScanResult struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Icon     string    `json:"icon"`
	Student  *Student  `json:"student,omitempty"`
	MealType MealType  `json:"meal_type,omitempty"`
	ServedAt time.Time `json:"served_at,omitempty"`
}
