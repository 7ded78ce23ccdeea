package domain

import "time"

type Student struct {
	ID          uint      `json:"id"`
	RegNumber   string    `json:"reg_number"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	MealBalance int       `json:"meal_balance"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Staff struct {
	ID        uint      `json:"id"`
	StaffID   string    `json:"staff_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"` // "staff" or "admin"
	CreatedAt time.Time `json:"created_at"`
}
