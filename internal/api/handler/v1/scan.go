package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/request"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/middleware"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/service"
)

type RedemptionService interface {
	Redeem(ctx context.Context, staffID uint, rawPayload string, now time.Time) (domain.ScanResult, error)
}

type ScanHandler struct {
	svc RedemptionService
}

func NewScanHandler(svc RedemptionService) *ScanHandler {
	return &ScanHandler{
		svc: svc,
	}
}

// HandleScan godoc
// @Summary      Redeem a scanned meal credential
// @Description  Validates the scanned payload and, on success, marks the
// @Description  credential consumed and appends a meal log. A failed check
// @Description  still returns 200 with success=false so the scanning station
// @Description  can show the reason to the server.
// @Tags         scan
// @Produce      json
// @Param        request   body      request.ScanRequest true "request body"
// @Success      200      {object}   domain.ScanResult
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /scan [post]
func (h *ScanHandler) HandleScan(ctx *gin.Context) {
	req := request.ScanRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	staffID := ctx.GetUint(middleware.ContextKeyUserID)

	result, err := h.svc.Redeem(ctx.Request.Context(), staffID, req.QRData, time.Now())
	if err != nil {
		if rejected, ok := scanRejection(err); ok {
			ctx.JSON(http.StatusOK, rejected)

			return
		}

		err = fmt.Errorf("v1.HandleScan -> h.svc.Redeem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// scanRejection maps a failed redemption check onto the envelope the
// scanning station renders. Store and infrastructure errors fall through.
func scanRejection(err error) (domain.ScanResult, bool) {
	switch {
	case errors.Is(err, service.ErrInvalidPayload):
		return domain.ScanResult{Message: err.Error(), Icon: "❌"}, true
	case errors.Is(err, service.ErrClaimExpired):
		return domain.ScanResult{Message: err.Error(), Icon: "⏰"}, true
	case errors.Is(err, service.ErrStudentNotFound):
		return domain.ScanResult{Message: "Student not found", Icon: "❓"}, true
	case errors.Is(err, service.ErrCredentialSpent):
		return domain.ScanResult{Message: err.Error(), Icon: "🚫"}, true
	}

	return domain.ScanResult{}, false
}
