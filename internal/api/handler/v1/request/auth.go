package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Lookahead needs regexp2; the stdlib engine cannot compile (?=.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

type StudentLoginRequest struct {
	RegNumber string `json:"reg_number"`
	Password  string `json:"password"`
}

func (req *StudentLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RegNumber, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type StaffLoginRequest struct {
	StaffID  string `json:"staff_id"`
	Password string `json:"password"`
}

func (req *StaffLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StaffID, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type EnrollStudentRequest struct {
	RegNumber string `json:"reg_number"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (req *EnrollStudentRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.RegNumber, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	ok, err := passwordExp.MatchString(req.Password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

type CreateStaffRequest struct {
	StaffID  string `json:"staff_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (req *CreateStaffRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StaffID, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In("staff", "admin")),
	)
	if err != nil {
		return err
	}

	ok, err := passwordExp.MatchString(req.Password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}
