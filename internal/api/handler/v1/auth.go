package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/request"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/config"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/pkg/jwthelper"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/service"
)

type AuthService interface {
	LoginStudent(ctx context.Context, regNumber, password string) (domain.Student, error)
	LoginStaff(ctx context.Context, staffID, password string) (domain.Staff, error)
	EnrollStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	ListStudents(ctx context.Context) ([]domain.Student, error)
	CreateStaff(ctx context.Context, staff domain.Staff) (domain.Staff, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleStudentLogin godoc
// @Summary      Login a student by registration number
// @Tags         auth
// @Produce      json
// @Param        request   body      request.StudentLoginRequest true "request body"
// @Success      200      {object}   response.StudentLoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login/student [post]
func (h *AuthHandler) HandleStudentLogin(ctx *gin.Context) {
	req := request.StudentLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	student, err := h.svc.LoginStudent(ctx.Request.Context(), req.RegNumber, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrWrongPassword))

			return
		}

		err = fmt.Errorf("v1.HandleStudentLogin -> h.svc.LoginStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), student.ID, "student")
	if err != nil {
		err = fmt.Errorf("v1.HandleStudentLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.StudentLoginResponse{
		Token:   token,
		Student: student,
	})
}

// HandleStaffLogin godoc
// @Summary      Login a staff member by staff id
// @Tags         auth
// @Produce      json
// @Param        request   body      request.StaffLoginRequest true "request body"
// @Success      200      {object}   response.StaffLoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login/staff [post]
func (h *AuthHandler) HandleStaffLogin(ctx *gin.Context) {
	req := request.StaffLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	staff, err := h.svc.LoginStaff(ctx.Request.Context(), req.StaffID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrWrongPassword))

			return
		}

		err = fmt.Errorf("v1.HandleStaffLogin -> h.svc.LoginStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), staff.ID, staff.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleStaffLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.StaffLoginResponse{
		Token: token,
		Staff: staff,
	})
}

// HandleEnrollStudent godoc
// @Summary      Enroll a new student
// @Tags         admin
// @Produce      json
// @Param        request   body      request.EnrollStudentRequest true "request body"
// @Success      201      {object}   domain.Student
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /students [post]
func (h *AuthHandler) HandleEnrollStudent(ctx *gin.Context) {
	req := request.EnrollStudentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	student, err := h.svc.EnrollStudent(ctx.Request.Context(), domain.Student{
		RegNumber: req.RegNumber,
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrStudentRegNumberExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrStudentRegNumberExists))

			return
		}

		err = fmt.Errorf("v1.HandleEnrollStudent -> h.svc.EnrollStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// HandleListStudents godoc
// @Summary      List all students
// @Tags         admin
// @Produce      json
// @Success      200      {array}    domain.Student
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /students [get]
func (h *AuthHandler) HandleListStudents(ctx *gin.Context) {
	students, err := h.svc.ListStudents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStudents -> h.svc.ListStudents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, students)
}

// HandleCreateStaff godoc
// @Summary      Create a staff account
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateStaffRequest true "request body"
// @Success      201      {object}   domain.Staff
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /staff [post]
func (h *AuthHandler) HandleCreateStaff(ctx *gin.Context) {
	req := request.CreateStaffRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	staff, err := h.svc.CreateStaff(ctx.Request.Context(), domain.Staff{
		StaffID:  req.StaffID,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateStaff -> h.svc.CreateStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, staff)
}
