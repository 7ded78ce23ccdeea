package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/middleware"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/service"
)

const mealHistoryLimit = 50

var (
	errInvalidStudentID = errors.New("invalid student id")
	errNotYourAccount   = errors.New("students may only access their own account")
)

type LedgerService interface {
	Balance(ctx context.Context, studentID uint) (int, error)
	MealHistory(ctx context.Context, studentID uint, limit int) ([]domain.MealLog, error)
	RecordPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

type CredentialService interface {
	EnsureActive(ctx context.Context, studentID uint, now time.Time) (service.CredentialDisplay, error)
}

type StudentHandler struct {
	ledger          LedgerService
	creds           CredentialService
	refreshInterval time.Duration
	upgrader        websocket.Upgrader
}

func NewStudentHandler(ledger LedgerService, creds CredentialService, refreshInterval time.Duration) *StudentHandler {
	return &StudentHandler{
		ledger:          ledger,
		creds:           creds,
		refreshInterval: refreshInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// studentID resolves the :studentID path param and enforces that a caller
// with the student role only reads their own account. Staff and admins may
// read any student.
func (h *StudentHandler) studentID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("studentID"), 10, 32)
	if err != nil {
		return 0, errInvalidStudentID
	}

	if ctx.GetString(middleware.ContextKeyUserRole) == "student" {
		if callerID, ok := ctx.Get(middleware.ContextKeyUserID); !ok || callerID != uint(id) {
			return 0, errNotYourAccount
		}
	}

	return uint(id), nil
}

// HandleGetBalance godoc
// @Summary      Get a student's meal credit balance
// @Tags         students
// @Produce      json
// @Param        studentID   path      int  true  "student id"
// @Success      200      {object}   response.BalanceResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /students/{studentID}/balance [get]
func (h *StudentHandler) HandleGetBalance(ctx *gin.Context) {
	id, err := h.studentID(ctx)
	if err != nil {
		renderStudentIDErr(ctx, err)

		return
	}

	balance, err := h.ledger.Balance(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBalance -> h.ledger.Balance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.BalanceResponse{
		StudentID: id,
		Balance:   balance,
	})
}

// HandleGetMeals godoc
// @Summary      Get a student's recent meal history
// @Tags         students
// @Produce      json
// @Param        studentID   path      int  true  "student id"
// @Success      200      {object}   response.MealHistoryResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /students/{studentID}/meals [get]
func (h *StudentHandler) HandleGetMeals(ctx *gin.Context) {
	id, err := h.studentID(ctx)
	if err != nil {
		renderStudentIDErr(ctx, err)

		return
	}

	meals, err := h.ledger.MealHistory(ctx.Request.Context(), id, mealHistoryLimit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMeals -> h.ledger.MealHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MealHistoryResponse{Meals: meals})
}

// HandleGetCredential godoc
// @Summary      Get the credential to display right now
// @Description  Inside a meal window this returns the window's QR credential,
// @Description  minting one on first call. Outside any window it reports when
// @Description  the next window opens.
// @Tags         students
// @Produce      json
// @Param        studentID   path      int  true  "student id"
// @Success      200      {object}   response.CredentialResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /students/{studentID}/credential [get]
func (h *StudentHandler) HandleGetCredential(ctx *gin.Context) {
	id, err := h.studentID(ctx)
	if err != nil {
		renderStudentIDErr(ctx, err)

		return
	}

	display, err := h.creds.EnsureActive(ctx.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStudentNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetCredential -> h.creds.EnsureActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCredentialResponse(display))
}

// HandleCredentialFeed godoc
// @Summary      Stream credential display updates over a websocket
// @Description  Pushes a credential snapshot immediately on connect and then
// @Description  on every refresh tick, so the dashboard flips between QR and
// @Description  countdown without polling.
// @Tags         students
// @Param        studentID   path      int  true  "student id"
// @Success      101
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Security     BearerAuth
// @Router       /students/{studentID}/credential/feed [get]
func (h *StudentHandler) HandleCredentialFeed(ctx *gin.Context) {
	id, err := h.studentID(ctx)
	if err != nil {
		renderStudentIDErr(ctx, err)

		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	defer conn.Close()

	// The loop goroutine is the only writer on the connection.
	loop := service.NewRefreshLoop(h.creds, id, h.refreshInterval, func(display service.CredentialDisplay) {
		if err := conn.WriteJSON(response.NewCredentialResponse(display)); err != nil {
			zap.L().Debug("credential feed write failed",
				zap.Uint("student_id", id),
				zap.Error(err),
			)
		}
	})

	loop.Start(ctx.Request.Context())
	defer loop.Stop()

	// Drain the connection until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func renderStudentIDErr(ctx *gin.Context, err error) {
	if errors.Is(err, errNotYourAccount) {
		response.RenderErr(ctx, response.ErrForbidden(err))

		return
	}

	response.RenderErr(ctx, response.ErrBadRequest(err))
}
