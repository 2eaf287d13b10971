package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/courtside/trainings-api/internal/api/handler/v1/response"
	"github.com/courtside/trainings-api/internal/pkg/jwthelper"
)

// AdminCookieName carries the admin JWT. httpOnly so page scripts never
// see it.
const AdminCookieName = "admin_token"

// ContextKeyCoachID is where VerifyJWT stores the authenticated coach id.
const ContextKeyCoachID = "coach_id"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT reads the admin cookie and validates the token. Missing,
// malformed and expired tokens all come back 401.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(AdminCookieName)
		if err != nil || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid or expired session"))

			return
		}

		ctx.Set(ContextKeyCoachID, claims.CoachID)
		ctx.Next()
	}
}
