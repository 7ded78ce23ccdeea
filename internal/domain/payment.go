package domain

import "time"

// Payment credits a student's ledger with meals. The core never interprets
// payment correctness; it only replays meals_added when deriving a balance.
type Payment struct {
	ID          uint      `json:"id"`
	StudentID   uint      `json:"student_id"`
	Amount      float64   `json:"amount"`
	MealsAdded  int       `json:"meals_added"`
	PaymentDate time.Time `json:"payment_date"`
}
