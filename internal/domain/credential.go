package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSupper    MealType = "supper"
)

// MealOrder is the fixed evaluation order of daily meal windows.
var MealOrder = []MealType{MealBreakfast, MealLunch, MealSupper}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealSupper:
		return true
	}

	return false
}

// Credential is one issued, single-use right to redeem one meal within a
// meal window. Rows are never deleted; a consumed or expired credential
// stays behind as the audit trail.
type Credential struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"student_id"`
	MealType  MealType  `json:"meal_type"`
	Payload   string    `json:"qr_data"`
	ImageURL  string    `json:"qr_image_url"`
	IssuedAt  time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Consumed  bool      `json:"consumed"`
}

// Claim is the structured payload encoded into the QR image. The expiry is
// embedded client-side at mint time; the validator re-checks the stored row
// independently.
type Claim struct {
	StudentID string   `json:"studentId"`
	RegNumber string   `json:"regNumber"`
	MealType  MealType `json:"mealType"`
	Expires   timeRFC  `json:"expires"`
}

// timeRFC keeps the wire format an ISO-8601 string while letting callers
// work with time.Time.
type timeRFC struct {
	time.Time
}

func (t timeRFC) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *timeRFC) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}

func NewClaim(studentID uint, regNumber string, mealType MealType, expires time.Time) Claim {
	return Claim{
		StudentID: strconv.FormatUint(uint64(studentID), 10),
		RegNumber: regNumber,
		MealType:  mealType,
		Expires:   timeRFC{expires},
	}
}

func (c Claim) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ParseStudentID converts the claim's string student id back to the store's
// numeric key.
func (c Claim) ParseStudentID() (uint, error) {
	id, err := strconv.ParseUint(c.StudentID, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

func (c Claim) ExpiresAt() time.Time {
	return c.Expires.Time
}

func DecodeClaim(payload string) (Claim, error) {
	var claim Claim
	if err := json.Unmarshal([]byte(payload), &claim); err != nil {
		return Claim{}, err
	}

	return claim, nil
}
