package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/courtside/trainings-api/docs"
	v1 "github.com/courtside/trainings-api/internal/api/handler/v1"
	"github.com/courtside/trainings-api/internal/api/middleware"
	"github.com/courtside/trainings-api/internal/config"
	"github.com/courtside/trainings-api/internal/notifier"
	"github.com/courtside/trainings-api/internal/repository"
	"github.com/courtside/trainings-api/internal/repository/dao"
	"github.com/courtside/trainings-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	notifications := s.initNotificationService()

	sessionHandler := s.initSessionHandler(db, notifications)
	cancelHandler := s.initCancelHandler(db, notifications)
	adminHandler := s.initAdminHandler(db, notifications)
	cronHandler := s.initCronHandler(db, notifications)
	s.MountHandlers(sessionHandler, cancelHandler, adminHandler, cronHandler)

	return s
}

func (s *Server) initNotificationService() *service.NotificationService {
	mailer := notifier.NewSMTPMailer(s.Config.SMTP)
	sms := notifier.NewSMSProvider(s.Config.SMS)

	return service.NewNotificationService(mailer, sms, s.Config.API.BaseURL)
}

func (s *Server) initSessionHandler(db *gorm.DB, notifications *service.NotificationService) *v1.SessionHandler {
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))
	regRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))

	svc := service.NewSessionService(sessionRepo)
	regSvc := service.NewRegistrationService(regRepo, sessionRepo, notifications)

	return v1.NewSessionHandler(svc, regSvc)
}

func (s *Server) initCancelHandler(db *gorm.DB, notifications *service.NotificationService) *v1.CancelHandler {
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))
	regRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))

	svc := service.NewRegistrationService(regRepo, sessionRepo, notifications)

	return v1.NewCancelHandler(svc)
}

func (s *Server) initAdminHandler(db *gorm.DB, notifications *service.NotificationService) *v1.AdminHandler {
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))
	regRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	locationRepo := repository.NewLocationRepository(dao.NewLocationDAO(db))
	coachRepo := repository.NewCoachRepository(dao.NewCoachDAO(db))

	svc := service.NewAdminService(sessionRepo, regRepo, locationRepo, coachRepo, notifications)

	return v1.NewAdminHandler(s.Config.API, svc)
}

func (s *Server) initCronHandler(db *gorm.DB, notifications *service.NotificationService) *v1.CronHandler {
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))

	svc := service.NewCronService(sessionRepo, notifications)

	return v1.NewCronHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(sessionHandler *v1.SessionHandler, cancelHandler *v1.CancelHandler, adminHandler *v1.AdminHandler, cronHandler *v1.CronHandler) {
	const basePath = "/api"

	public := s.Router.Group(basePath)
	{
		public.GET("/sessions", sessionHandler.HandleListSessions)
		public.GET("/sessions/:sessionID", sessionHandler.HandleGetSession)
		public.POST("/sessions/:sessionID/registrations", sessionHandler.HandleCreateRegistration)
		public.DELETE("/sessions/:sessionID/registrations", sessionHandler.HandleManualCancellation)

		public.GET("/cancel/:token", cancelHandler.HandleResolveCancellation)
		public.DELETE("/cancel/:token", cancelHandler.HandleExecuteCancellation)
	}

	loginLimiter := middleware.NewLoginRateLimiter(5, 15*time.Minute)
	s.Router.POST(basePath+"/admin/login", loginLimiter.Middleware(), adminHandler.HandleLogin)
	s.Router.POST(basePath+"/admin/logout", adminHandler.HandleLogout)

	admin := s.Router.Group(basePath+"/admin", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/sessions", adminHandler.HandleListSessions)
		admin.POST("/sessions", adminHandler.HandleCreateSession)
		admin.PUT("/sessions/:sessionID", adminHandler.HandleUpdateSession)
		admin.PATCH("/sessions/:sessionID/visibility", adminHandler.HandleSetVisibility)
		admin.DELETE("/sessions/:sessionID", adminHandler.HandleDeleteSession)
		admin.DELETE("/registrations/:registrationID", adminHandler.HandleRemoveRegistration)
		admin.GET("/locations", adminHandler.HandleListLocations)
		admin.DELETE("/locations/:locationID", adminHandler.HandleDeleteLocation)
		admin.GET("/profile", adminHandler.HandleGetProfile)
		admin.PUT("/profile", adminHandler.HandleUpdateProfile)
		admin.PUT("/password", adminHandler.HandleChangePassword)
	}

	cron := s.Router.Group(basePath+"/cron", middleware.VerifyCronSecret(s.Config.API.CronSecret))
	{
		cron.GET("/session-reminders", cronHandler.HandleSessionReminders)
		cron.GET("/archive-sessions", cronHandler.HandleArchiveSessions)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Courtside Trainings API"
	docs.SwaggerInfo.Description = "Booking API for youth volleyball and basketball training sessions."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
