package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stockpile/inventory-api/internal/api/handler/v1/response"
	"github.com/stockpile/inventory-api/internal/pkg/jwthelper"
)

const (
	// CtxUserIDKey holds the resolved caller identity. It is the only
	// identity handlers may trust; client-supplied IDs in the body are ignored.
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT guards a route group. No credentials at all is 401; credentials
// that fail verification (bad signature, malformed, expired) are 403.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing authorization header"))

			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.RenderErr(ctx, response.ErrPermissionDenied("invalid authorization header"))

			return
		}

		claims, err := jwthelper.VerifyToken(a.signingKey, parts[1])
		if err != nil {
			response.RenderErr(ctx, response.ErrPermissionDenied("invalid or expired token"))

			return
		}

		ctx.Set(CtxUserIDKey, claims.UserID)
		ctx.Set(CtxUsernameKey, claims.Username)

		ctx.Next()
	}
}
