package response

import "github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"

type StudentLoginResponse struct {
	Token   string         `json:"token"`
	Student domain.Student `json:"student"`
}

type StaffLoginResponse struct {
	Token string       `json:"token"`
	Staff domain.Staff `json:"staff"`
}
