package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID   = "userID"
	ContextKeyUserRole = "userRole"
)

var (
	errMissingToken     = errors.New("missing or malformed authorization header")
	errInsufficientRole = errors.New("insufficient permissions")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT parses the bearer token and stores the caller's id and role in
// the request context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyUserRole, claims.Role)

		ctx.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set. Runs
// after VerifyJWT.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString(ContextKeyUserRole)

		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()

				return
			}
		}

		response.RenderErr(ctx, response.ErrForbidden(errInsufficientRole))
	}
}
