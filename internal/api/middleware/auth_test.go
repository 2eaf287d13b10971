package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/trainings-api/internal/pkg/jwthelper"
)

func TestAuthenticator_VerifyJWT(t *testing.T) {
	const signingKey = "test-signing-key"

	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := NewAuthenticator(signingKey)
	router.GET("/admin", auth.VerifyJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"coach_id": ctx.GetUint(ContextKeyCoachID)})
	})

	validToken, err := jwthelper.GenerateToken([]byte(signingKey), 7, "test-agent")
	require.NoError(t, err)

	otherKeyToken, err := jwthelper.GenerateToken([]byte("some-other-key"), 7, "test-agent")
	require.NoError(t, err)

	tests := []struct {
		name     string
		cookie   string
		wantCode int
	}{
		{name: "valid token", cookie: validToken, wantCode: http.StatusOK},
		{name: "no cookie", cookie: "", wantCode: http.StatusUnauthorized},
		{name: "garbage token", cookie: "not-a-jwt", wantCode: http.StatusUnauthorized},
		{name: "wrong signing key", cookie: otherKeyToken, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{
					Name:    AdminCookieName,
					Value:   tt.cookie,
					Expires: time.Now().Add(time.Hour),
				})
			}
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, resp.Body.String(), `"coach_id":7`)
			}
		})
	}
}
