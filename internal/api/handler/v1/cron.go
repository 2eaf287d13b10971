package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtside/trainings-api/internal/api/handler/v1/response"
	"github.com/courtside/trainings-api/internal/service"
)

type CronService interface {
	SendReminders(ctx context.Context, now time.Time) (service.ReminderStats, error)
	ArchiveOldSessions(ctx context.Context, now time.Time) (int64, error)
}

type CronHandler struct {
	svc CronService
}

func NewCronHandler(svc CronService) *CronHandler {
	return &CronHandler{
		svc: svc,
	}
}

// HandleSessionReminders godoc
// @Summary      Send next-day reminder emails (scheduler only)
// @Tags         cron
// @Produce      json
// @Success      200  {object}  service.ReminderStats
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cron/session-reminders [get]
func (h *CronHandler) HandleSessionReminders(ctx *gin.Context) {
	stats, err := h.svc.SendReminders(ctx.Request.Context(), time.Now())
	if err != nil {
		err = fmt.Errorf("v1.HandleSessionReminders -> h.svc.SendReminders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleArchiveSessions godoc
// @Summary      Hide sessions dated before yesterday (scheduler only)
// @Tags         cron
// @Produce      json
// @Success      200  {object}  response.ArchiveResult
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cron/archive-sessions [get]
func (h *CronHandler) HandleArchiveSessions(ctx *gin.Context) {
	archived, err := h.svc.ArchiveOldSessions(ctx.Request.Context(), time.Now())
	if err != nil {
		err = fmt.Errorf("v1.HandleArchiveSessions -> h.svc.ArchiveOldSessions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ArchiveResult{Archived: archived})
}
