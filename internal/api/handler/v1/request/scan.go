package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// ScanRequest carries the raw decoded text produced by the scanning
// hardware; parsing it as a claim is the validator's first step.
type ScanRequest struct {
	QRData string `json:"qr_data"`
}

func (req *ScanRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.QRData, validation.Required),
	)
}

type RecordPaymentRequest struct {
	StudentID  uint    `json:"student_id"`
	Amount     float64 `json:"amount"`
	MealsAdded int     `json:"meals_added"`
}

func (req *RecordPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.0)),
		validation.Field(&req.MealsAdded, validation.Required, validation.Min(1)),
	)
}
