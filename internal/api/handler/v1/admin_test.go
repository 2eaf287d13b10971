package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/trainings-api/internal/api/middleware"
	"github.com/courtside/trainings-api/internal/config"
	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/service"
)

type stubAdminService struct {
	loginErr   error
	svcErr     error
	gotSession domain.Session
}

func (s *stubAdminService) Login(context.Context, string) (domain.Coach, error) {
	if s.loginErr != nil {
		return domain.Coach{}, s.loginErr
	}

	return domain.Coach{ID: 1}, nil
}

func (s *stubAdminService) ListSessions(context.Context) ([]domain.Session, error) {
	return []domain.Session{openTestSession()}, s.svcErr
}

func (s *stubAdminService) CreateSession(_ context.Context, session domain.Session) (domain.Session, error) {
	s.gotSession = session
	session.ID = 3

	return session, s.svcErr
}

func (s *stubAdminService) UpdateSession(_ context.Context, session domain.Session) (domain.Session, error) {
	s.gotSession = session

	return session, s.svcErr
}

func (s *stubAdminService) SetSessionVisibility(context.Context, uint, bool) error { return s.svcErr }
func (s *stubAdminService) DeleteSession(context.Context, uint) error              { return s.svcErr }
func (s *stubAdminService) RemoveRegistration(context.Context, uint) error         { return s.svcErr }

func (s *stubAdminService) ListLocations(context.Context) ([]domain.Location, error) {
	return nil, s.svcErr
}

func (s *stubAdminService) DeleteLocation(context.Context, uint) error { return s.svcErr }

func (s *stubAdminService) GetProfile(context.Context) (domain.Profile, error) {
	return domain.Profile{DisplayName: "Coach Kim"}, s.svcErr
}

func (s *stubAdminService) UpdateProfile(_ context.Context, profile domain.Profile) (domain.Profile, error) {
	return profile, s.svcErr
}

func (s *stubAdminService) ChangePassword(context.Context, string, string) error {
	if s.loginErr != nil {
		return s.loginErr
	}

	return s.svcErr
}

func newAdminTestRouter(svc AdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewAdminHandler(&config.APIConfig{
		Environment:   "test",
		JWTSigningKey: "test-signing-key",
	}, svc)

	router.POST("/api/admin/login", h.HandleLogin)
	router.POST("/api/admin/logout", h.HandleLogout)
	router.GET("/api/admin/sessions", h.HandleListSessions)
	router.POST("/api/admin/sessions", h.HandleCreateSession)
	router.PUT("/api/admin/sessions/:sessionID", h.HandleUpdateSession)
	router.PATCH("/api/admin/sessions/:sessionID/visibility", h.HandleSetVisibility)
	router.DELETE("/api/admin/sessions/:sessionID", h.HandleDeleteSession)
	router.PUT("/api/admin/password", h.HandleChangePassword)

	return router
}

func TestHandleLogin(t *testing.T) {
	t.Run("sets the admin cookie", func(t *testing.T) {
		router := newAdminTestRouter(&stubAdminService{})

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"training123"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		cookies := resp.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.AdminCookieName, cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Secure, "secure only in production")
	})

	t.Run("wrong password", func(t *testing.T) {
		router := newAdminTestRouter(&stubAdminService{loginErr: service.ErrWrongPassword})

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Empty(t, resp.Result().Cookies())
	})

	t.Run("empty password", func(t *testing.T) {
		router := newAdminTestRouter(&stubAdminService{})

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":""}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	router := newAdminTestRouter(&stubAdminService{})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AdminCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHandleCreateSession(t *testing.T) {
	validBody := `{
		"sport": "volleyball",
		"age_group": "U14",
		"date": "2024-01-15",
		"time_range": "6:00 PM - 7:30 PM",
		"location": "Community Center",
		"address": "123 Main St, Springfield",
		"max_participants": 12,
		"price": 25
	}`

	t.Run("created", func(t *testing.T) {
		svc := &stubAdminService{}
		router := newAdminTestRouter(svc)

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/sessions", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, "volleyball", svc.gotSession.Sport)
		assert.True(t, svc.gotSession.IsVisible)
	})

	t.Run("rejects unknown sport", func(t *testing.T) {
		router := newAdminTestRouter(&stubAdminService{})

		body := strings.Replace(validBody, "volleyball", "soccer", 1)
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/sessions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("update of unknown session", func(t *testing.T) {
		router := newAdminTestRouter(&stubAdminService{svcErr: service.ErrSessionNotFound})

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/admin/sessions/42", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandleSetVisibility(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{name: "hide", body: `{"is_visible":false}`, wantCode: http.StatusOK},
		{name: "missing flag", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "unknown session", body: `{"is_visible":true}`, svcErr: service.ErrSessionNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminTestRouter(&stubAdminService{svcErr: tt.svcErr})

			resp := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/admin/sessions/3/visibility", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHandleChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		loginErr error
		wantCode int
	}{
		{
			name:     "updated",
			body:     `{"current_password":"training123","new_password":"newpassword1"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "weak new password",
			body:     `{"current_password":"training123","new_password":"short"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrong current password",
			body:     `{"current_password":"nope","new_password":"newpassword1"}`,
			loginErr: service.ErrWrongPassword,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminTestRouter(&stubAdminService{loginErr: tt.loginErr})

			resp := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/admin/password", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
