package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtside/trainings-api/internal/api/handler/v1/response"
	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/pkg/schedule"
	"github.com/courtside/trainings-api/internal/service"
)

type CancellationService interface {
	ResolveToken(ctx context.Context, token string) (domain.Registration, domain.Session, error)
	CancelByToken(ctx context.Context, token string) error
}

type CancelHandler struct {
	svc CancellationService
}

func NewCancelHandler(svc CancellationService) *CancelHandler {
	return &CancelHandler{
		svc: svc,
	}
}

// HandleResolveCancellation godoc
// @Summary      Resolve a cancellation token to its registration details
// @Tags         cancellation
// @Produce      json
// @Param        token  path  string  true  "cancellation token"
// @Success      200  {object}  response.CancellationPreview
// @Failure      404  {object}  response.Err
// @Failure      410  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cancel/{token} [get]
func (h *CancelHandler) HandleResolveCancellation(ctx *gin.Context) {
	token := ctx.Param("token")

	reg, session, err := h.svc.ResolveToken(ctx.Request.Context(), token)
	if err != nil {
		h.renderCancellationErr(ctx, "v1.HandleResolveCancellation", err)

		return
	}

	ctx.JSON(http.StatusOK, response.CancellationPreview{
		PlayerName:  reg.PlayerName,
		SessionDate: schedule.FormatDate(session.Date),
		TimeRange:   session.TimeRange,
		Location:    session.Location,
		Address:     session.Address,
		Sport:       session.Sport,
		Price:       session.Price,
	})
}

// HandleExecuteCancellation godoc
// @Summary      Cancel the registration behind a token
// @Tags         cancellation
// @Produce      json
// @Param        token  path  string  true  "cancellation token"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.Err
// @Failure      410  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cancel/{token} [delete]
func (h *CancelHandler) HandleExecuteCancellation(ctx *gin.Context) {
	token := ctx.Param("token")

	if err := h.svc.CancelByToken(ctx.Request.Context(), token); err != nil {
		h.renderCancellationErr(ctx, "v1.HandleExecuteCancellation", err)

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "registration cancelled"})
}

func (h *CancelHandler) renderCancellationErr(ctx *gin.Context, caller string, err error) {
	switch {
	case errors.Is(err, service.ErrRegistrationNotFound):
		response.RenderErr(ctx, response.ErrNotFound("invalid cancellation link"))
	case errors.Is(err, service.ErrTokenExpired):
		response.RenderErr(ctx, response.ErrGone(
			"this cancellation link has expired; cancellations must be made at least 24 hours before the session"))
	default:
		err = fmt.Errorf("%v -> %w", caller, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
