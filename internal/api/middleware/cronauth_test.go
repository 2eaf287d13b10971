package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestVerifyCronSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/cron", VerifyCronSecret("cron-secret"), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "valid secret", header: "Bearer cron-secret", wantCode: http.StatusOK},
		{name: "wrong secret", header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized},
		{name: "not a bearer scheme", header: "Basic cron-secret", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/cron", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
