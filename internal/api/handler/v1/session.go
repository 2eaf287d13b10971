package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtside/trainings-api/internal/api/handler/v1/request"
	"github.com/courtside/trainings-api/internal/api/handler/v1/response"
	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/service"
)

type SessionService interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
	GetSession(ctx context.Context, id uint) (domain.Session, error)
}

type RegistrationService interface {
	Register(ctx context.Context, sessionID uint, reg domain.Registration) (domain.Registration, error)
	CancelManual(ctx context.Context, sessionID uint, email, playerName string) error
}

type SessionHandler struct {
	svc    SessionService
	regSvc RegistrationService
}

func NewSessionHandler(svc SessionService, regSvc RegistrationService) *SessionHandler {
	return &SessionHandler{
		svc:    svc,
		regSvc: regSvc,
	}
}

// HandleListSessions godoc
// @Summary      List visible sessions with their registrations
// @Tags         sessions
// @Produce      json
// @Success      200  {array}   response.Session
// @Failure      500  {object}  response.Err
// @Router       /sessions [get]
func (h *SessionHandler) HandleListSessions(ctx *gin.Context) {
	sessions, err := h.svc.ListSessions(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSessions -> h.svc.ListSessions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewSessions(sessions))
}

// HandleGetSession godoc
// @Summary      Get one visible session
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path      int  true  "session ID"
// @Success      200  {object}  response.Session
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sessions/{sessionID} [get]
func (h *SessionHandler) HandleGetSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sessionID")
	if !ok {
		return
	}

	session, err := h.svc.GetSession(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("session not found"))

			return
		}

		err = fmt.Errorf("v1.HandleGetSession -> h.svc.GetSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewSession(session))
}

// HandleCreateRegistration godoc
// @Summary      Register a player for a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      int                      true  "session ID"
// @Param        request    body      request.RegisterRequest  true  "request body"
// @Success      201  {object}  domain.Registration
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sessions/{sessionID}/registrations [post]
func (h *SessionHandler) HandleCreateRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sessionID")
	if !ok {
		return
	}

	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.regSvc.Register(ctx.Request.Context(), id, domain.Registration{
		PlayerName:       req.PlayerName,
		PlayerAge:        req.PlayerAge,
		ExperienceLevel:  req.ExperienceLevel,
		ParentName:       req.ParentName,
		ParentEmail:      req.ParentEmail,
		ParentPhone:      req.ParentPhone,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		MedicalNotes:     req.MedicalNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("session not found"))
		case errors.Is(err, service.ErrSessionFull):
			response.RenderErr(ctx, response.ErrBadRequestMsg(service.ErrSessionFull.Error()))
		case errors.Is(err, service.ErrDuplicateRegistration):
			response.RenderErr(ctx, response.ErrConflict(
				"this player is already registered for this session; check your email for the confirmation or use the cancellation link"))
		default:
			err = fmt.Errorf("v1.HandleCreateRegistration -> h.regSvc.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleManualCancellation godoc
// @Summary      Cancel a registration by session, email and player name
// @Tags         sessions
// @Produce      json
// @Param        sessionID   path   int     true  "session ID"
// @Param        email       query  string  true  "parent email"
// @Param        playerName  query  string  true  "player name"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sessions/{sessionID}/registrations [delete]
func (h *SessionHandler) HandleManualCancellation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sessionID")
	if !ok {
		return
	}

	var req request.ManualCancellationRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err := h.regSvc.CancelManual(ctx.Request.Context(), id, req.Email, req.PlayerName)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("no registration found for that email and player name"))

			return
		}

		err = fmt.Errorf("v1.HandleManualCancellation -> h.regSvc.CancelManual -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "registration cancelled"})
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v", name)))

		return 0, false
	}

	return uint(id), true
}
