package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/request"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/service"
)

type PaymentHandler struct {
	ledger LedgerService
}

func NewPaymentHandler(ledger LedgerService) *PaymentHandler {
	return &PaymentHandler{
		ledger: ledger,
	}
}

// HandleRecordPayment godoc
// @Summary      Record a meal credit purchase for a student
// @Tags         admin
// @Produce      json
// @Param        request   body      request.RecordPaymentRequest true "request body"
// @Success      201      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /payments [post]
func (h *PaymentHandler) HandleRecordPayment(ctx *gin.Context) {
	req := request.RecordPaymentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment, err := h.ledger.RecordPayment(ctx.Request.Context(), domain.Payment{
		StudentID:  req.StudentID,
		Amount:     req.Amount,
		MealsAdded: req.MealsAdded,
	})
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStudentNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleRecordPayment -> h.ledger.RecordPayment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleListPayments godoc
// @Summary      List all recorded payments
// @Tags         admin
// @Produce      json
// @Success      200      {array}    domain.Payment
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /payments [get]
func (h *PaymentHandler) HandleListPayments(ctx *gin.Context) {
	payments, err := h.ledger.ListPayments(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPayments -> h.ledger.ListPayments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, payments)
}
