package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/audit"
	"github.com/glowbook/salon-booking-api/internal/config"
	"github.com/glowbook/salon-booking-api/internal/handlers"
	"github.com/glowbook/salon-booking-api/internal/identity"
	infraRepo "github.com/glowbook/salon-booking-api/internal/infra/repository"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/tenant"
	ucAppointment "github.com/glowbook/salon-booking-api/internal/usecase/appointment"
	ucSchedule "github.com/glowbook/salon-booking-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	verifier := identity.NewJWTVerifier(cfg.IdentityJWTSecret)
	resolver := tenant.NewResolver(db, cfg.ContextCacheTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)

	getScheduleUC := ucSchedule.NewGetSchedule(scheduleRepo)
	replaceHoursUC := ucSchedule.NewReplaceWorkingHours(scheduleRepo, auditDispatcher)
	createExceptionUC := ucSchedule.NewCreateException(scheduleRepo, auditDispatcher)
	deleteExceptionUC := ucSchedule.NewDeleteException(scheduleRepo, auditDispatcher)
	listBlocksUC := ucSchedule.NewListBlocks(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		log,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		getScheduleUC,
		replaceHoursUC,
		createExceptionUC,
		deleteExceptionUC,
		listBlocksUC,
		log,
	)

	profileHandler := handlers.NewProfileHandler(db, resolver, log)
	serviceHandler := handlers.NewServiceHandler(db, log)
	meHandler := handlers.NewMeHandler(db, resolver, log)
	webhookHandler := handlers.NewWebhookHandler(db, cfg.WebhookSecret, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		limiter.RateLimit(),
	)
	{
		// ------------------------------
		// WEBHOOKS (signed, no session)
		// ------------------------------
		api.POST("/webhooks/identity", webhookHandler.HandleIdentityEvent)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		authed := api.Group("/")
		authed.Use(middleware.Authenticate(verifier, log))
		{
			authed.GET("/me", meHandler.GetMe)
			authed.POST("/auth/role", meHandler.AssignRole)

			// ------------------------------
			// BUSINESS SCOPE
			// ------------------------------
			business := authed.Group("/business")
			business.Use(middleware.BusinessContext(resolver))
			{
				// Profile routes run before a profile exists.
				business.GET("/profile", profileHandler.Get)
				business.PUT("/profile", profileHandler.Upsert)

				// Listing degrades to empty without a profile.
				business.GET("/appointments", appointmentHandler.List)

				gated := business.Group("/")
				gated.Use(middleware.RequireBusiness())
				{
					gated.POST("/appointments", appointmentHandler.Create)
					gated.PUT("/appointments", appointmentHandler.Update)
					gated.DELETE("/appointments", appointmentHandler.Delete)

					gated.GET("/schedule", scheduleHandler.Get)
					gated.PUT("/schedule", scheduleHandler.UpdateHours)
					gated.POST("/schedule", scheduleHandler.CreateException)
					gated.DELETE("/schedule", scheduleHandler.DeleteException)
					gated.GET("/schedule/blocks", scheduleHandler.Blocks)

					gated.GET("/services", serviceHandler.List)
					gated.POST("/services", serviceHandler.Create)
					gated.PUT("/services/:id", serviceHandler.Update)
					gated.DELETE("/services/:id", serviceHandler.Delete)

					gated.GET("/audit-logs", auditLogsHandler.List)
				}
			}
		}
	}
}
