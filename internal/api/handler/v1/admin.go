package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtside/trainings-api/internal/api/handler/v1/request"
	"github.com/courtside/trainings-api/internal/api/handler/v1/response"
	"github.com/courtside/trainings-api/internal/api/middleware"
	"github.com/courtside/trainings-api/internal/config"
	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/pkg/jwthelper"
	"github.com/courtside/trainings-api/internal/service"
)

const adminCookieMaxAge = 24 * 60 * 60 // seconds, matches the JWT expiry

type AdminService interface {
	Login(ctx context.Context, password string) (domain.Coach, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	CreateSession(ctx context.Context, session domain.Session) (domain.Session, error)
	UpdateSession(ctx context.Context, session domain.Session) (domain.Session, error)
	SetSessionVisibility(ctx context.Context, id uint, visible bool) error
	DeleteSession(ctx context.Context, id uint) error
	RemoveRegistration(ctx context.Context, id uint) error
	ListLocations(ctx context.Context) ([]domain.Location, error)
	DeleteLocation(ctx context.Context, id uint) error
	GetProfile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	ChangePassword(ctx context.Context, current, next string) error
}

type AdminHandler struct {
	conf *config.APIConfig
	svc  AdminService
}

func NewAdminHandler(conf *config.APIConfig, svc AdminService) *AdminHandler {
	return &AdminHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Log in to the admin panel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body  request.LoginRequest  true  "request body"
// @Success      200  {object}  response.LoginResult
// @Failure      401  {object}  response.Err
// @Failure      429  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	coach, err := h.svc.Login(ctx.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized("wrong password"))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), coach.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	secure := h.conf.Environment == "production"
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AdminCookieName, token, adminCookieMaxAge, "/", "", secure, true)

	ctx.JSON(http.StatusOK, response.LoginResult{Message: "logged in"})
}

// HandleLogout godoc
// @Summary      Log out of the admin panel
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Message
// @Router       /admin/logout [post]
func (h *AdminHandler) HandleLogout(ctx *gin.Context) {
	secure := h.conf.Environment == "production"
	ctx.SetCookie(middleware.AdminCookieName, "", -1, "/", "", secure, true)

	ctx.JSON(http.StatusOK, response.Message{Message: "logged out"})
}

// HandleListSessions godoc
// @Summary      List all sessions, including hidden ones
// @Tags         admin
// @Produce      json
// @Security     AdminCookie
// @Success      200  {array}   response.Session
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/sessions [get]
func (h *AdminHandler) HandleListSessions(ctx *gin.Context) {
	sessions, err := h.svc.ListSessions(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.AdminHandler.HandleListSessions -> h.svc.ListSessions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewSessions(sessions))
}

// HandleCreateSession godoc
// @Summary      Create a session
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminCookie
// @Param        request  body  request.SessionRequest  true  "request body"
// @Success      201  {object}  response.Session
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/sessions [post]
func (h *AdminHandler) HandleCreateSession(ctx *gin.Context) {
	session, ok := h.bindSessionRequest(ctx)
	if !ok {
		return
	}

	created, err := h.svc.CreateSession(ctx.Request.Context(), session)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSession -> h.svc.CreateSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewSession(created))
}

// HandleUpdateSession godoc
// @Summary      Update a session, notifying registered participants on changes
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminCookie
// @Param        sessionID  path  int                     true  "session ID"
// @Param        request    body  request.SessionRequest  true  "request body"
// @Success      200  {object}  response.Session
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/sessions/{sessionID} [put]
func (h *AdminHandler) HandleUpdateSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sessionID")
	if !ok {
		return
	}

	session, ok := h.bindSessionRequest(ctx)
	if !ok {
		return
	}
	session.ID = id

	updated, err := h.svc.UpdateSession(ctx.Request.Context(), session)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("session not found"))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateSession -> h.svc.UpdateSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewSession(updated))
}

// HandleSetVisibility godoc
// @Summary      Show, hide or archive a session
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminCookie
// @Param        sessionID  path  int                        true  "session ID"
// @Param        request    body  request.VisibilityRequest  true  "request body"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/sessions/{sessionID}/visibility [patch]
func (h *AdminHandler) HandleSetVisibility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sessionID")
	if !ok {
		return
	}

	var req request.VisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.SetSessionVisibility(ctx.Request.Context(), id, *req.IsVisible); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("session not found"))

			return
		}

		err = fmt.Errorf("v1.HandleSetVisibility -> h.svc.SetSessionVisibility -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "visibility updated"})
}

// HandleDeleteSession godoc
// @Summary      Delete a session and its registrations
// @Tags         admin
// @Produce      json
// @Security     AdminCookie
// @Param        sessionID  path  int  true  "session ID"
// @Success      200  {object}  response.Message
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/sessions/{sessionID} [delete]
func (h *AdminHandler) HandleDeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sessionID")
	if !ok {
		return
	}

	if err := h.svc.DeleteSession(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("session not found"))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteSession -> h.svc.DeleteSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "session deleted"})
}

// HandleRemoveRegistration godoc
// @Summary      Remove a participant from a session
// @Tags         admin
// @Produce      json
// @Security     AdminCookie
// @Param        registrationID  path  int  true  "registration ID"
// @Success      200  {object}  response.Message
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/registrations/{registrationID} [delete]
func (h *AdminHandler) HandleRemoveRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "registrationID")
	if !ok {
		return
	}

	if err := h.svc.RemoveRegistration(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration not found"))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveRegistration -> h.svc.RemoveRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "registration removed"})
}

// HandleListLocations godoc
// @Summary      List cached locations, most recently used first
// @Tags         admin
// @Produce      json
// @Security     AdminCookie
// @Success      200  {array}   domain.Location
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/locations [get]
func (h *AdminHandler) HandleListLocations(ctx *gin.Context) {
	locations, err := h.svc.ListLocations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListLocations -> h.svc.ListLocations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, locations)
}

// HandleDeleteLocation godoc
// @Summary      Delete a cached location
// @Tags         admin
// @Produce      json
// @Security     AdminCookie
// @Param        locationID  path  int  true  "location ID"
// @Success      200  {object}  response.Message
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/locations/{locationID} [delete]
func (h *AdminHandler) HandleDeleteLocation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "locationID")
	if !ok {
		return
	}

	if err := h.svc.DeleteLocation(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("location not found"))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteLocation -> h.svc.DeleteLocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "location deleted"})
}

// HandleGetProfile godoc
// @Summary      Get the coach profile
// @Tags         admin
// @Produce      json
// @Security     AdminCookie
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/profile [get]
func (h *AdminHandler) HandleGetProfile(ctx *gin.Context) {
	profile, err := h.svc.GetProfile(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetProfile -> h.svc.GetProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// HandleUpdateProfile godoc
// @Summary      Update the coach profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminCookie
// @Param        request  body  request.ProfileRequest  true  "request body"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/profile [put]
func (h *AdminHandler) HandleUpdateProfile(ctx *gin.Context) {
	var req request.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateProfile(ctx.Request.Context(), domain.Profile{
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateProfile -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleChangePassword godoc
// @Summary      Change the admin password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminCookie
// @Param        request  body  request.ChangePasswordRequest  true  "request body"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/password [put]
func (h *AdminHandler) HandleChangePassword(ctx *gin.Context) {
	var req request.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.ChangePassword(ctx.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized("wrong password"))

			return
		}

		err = fmt.Errorf("v1.HandleChangePassword -> h.svc.ChangePassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "password updated"})
}

func (h *AdminHandler) bindSessionRequest(ctx *gin.Context) (domain.Session, bool) {
	var req request.SessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return domain.Session{}, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return domain.Session{}, false
	}

	session, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return domain.Session{}, false
	}

	return session, true
}
