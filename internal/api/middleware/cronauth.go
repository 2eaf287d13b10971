package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/courtside/trainings-api/internal/api/handler/v1/response"
)

// VerifyCronSecret guards the scheduler-only endpoints with a static
// bearer secret, compared in constant time.
func VerifyCronSecret(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized("missing bearer token"))

			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid bearer token"))

			return
		}

		ctx.Next()
	}
}
