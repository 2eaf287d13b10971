package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/courtside/trainings-api/internal/service"
)

type stubCronService struct {
	stats    service.ReminderStats
	archived int64
	err      error
}

func (s *stubCronService) SendReminders(context.Context, time.Time) (service.ReminderStats, error) {
	return s.stats, s.err
}

func (s *stubCronService) ArchiveOldSessions(context.Context, time.Time) (int64, error) {
	return s.archived, s.err
}

func newCronTestRouter(svc CronService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewCronHandler(svc)
	router.GET("/api/cron/session-reminders", h.HandleSessionReminders)
	router.GET("/api/cron/archive-sessions", h.HandleArchiveSessions)

	return router
}

func TestHandleSessionReminders(t *testing.T) {
	router := newCronTestRouter(&stubCronService{stats: service.ReminderStats{Sessions: 2, Sent: 3, Failed: 1}})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cron/session-reminders", nil)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"sessions":2,"sent":3,"failed":1}`, resp.Body.String())
}

func TestHandleArchiveSessions(t *testing.T) {
	t.Run("reports the count", func(t *testing.T) {
		router := newCronTestRouter(&stubCronService{archived: 4})

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cron/archive-sessions", nil)
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"archived":4}`, resp.Body.String())
	})

	t.Run("repo failure", func(t *testing.T) {
		router := newCronTestRouter(&stubCronService{err: errors.New("db down")})

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cron/archive-sessions", nil)
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
