package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/stockpile/inventory-api/internal/api/handler/v1/response"
	"github.com/stockpile/inventory-api/internal/api/middleware"
)

// getCallerID returns the identity the authenticator resolved for this
// request. Handlers never read an identity from the request body.
func getCallerID(ctx *gin.Context) (uint, *response.Err) {
	v, ok := ctx.Get(middleware.CtxUserIDKey)
	if !ok {
		return 0, response.ErrUnauthorized("no identity in request context")
	}

	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, response.ErrUnauthorized("no identity in request context")
	}

	return id, nil
}
