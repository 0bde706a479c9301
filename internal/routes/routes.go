package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studysched/tutor-scheduler/internal/audit"
	"github.com/studysched/tutor-scheduler/internal/cache"
	"github.com/studysched/tutor-scheduler/internal/config"
	"github.com/studysched/tutor-scheduler/internal/handlers"
	infraRepo "github.com/studysched/tutor-scheduler/internal/infra/repository"
	"github.com/studysched/tutor-scheduler/internal/middleware"
	"github.com/studysched/tutor-scheduler/internal/models"
	"github.com/studysched/tutor-scheduler/internal/storage"
	"github.com/studysched/tutor-scheduler/internal/timezone"
	ucAvailability "github.com/studysched/tutor-scheduler/internal/usecase/availability"
	ucBooking "github.com/studysched/tutor-scheduler/internal/usecase/booking"
	ucSession "github.com/studysched/tutor-scheduler/internal/usecase/session"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	r.Use(middleware.CORSMiddleware())
	r.Use(limiter.Middleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	monthCache := cache.New(cfg, logger)
	avatarStore := storage.NewAvatarStore(cfg)

	campusLoc := timezone.Location(cfg.CampusTimezone)

	// ======================================================
	// USE CASES — AVAILABILITY
	// ======================================================
	listBlocksUC := ucAvailability.NewListBlocks(schedulingRepo)
	createBlockUC := ucAvailability.NewCreateBlock(schedulingRepo, auditDispatcher, campusLoc)
	updateBlockUC := ucAvailability.NewUpdateBlock(schedulingRepo, auditDispatcher, campusLoc)
	deleteBlockUC := ucAvailability.NewDeleteBlock(schedulingRepo, auditDispatcher)

	// ======================================================
	// USE CASES — SESSIONS
	// ======================================================
	publishSessionUC := ucSession.NewPublishSession(schedulingRepo, auditDispatcher, monthCache, logger, campusLoc)
	cancelSessionUC := ucSession.NewCancelSession(schedulingRepo, auditDispatcher, monthCache, logger)
	listSessionsUC := ucSession.NewListSessions(schedulingRepo)
	monthCalendarUC := ucSession.NewMonthCalendar(schedulingRepo, monthCache, campusLoc)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	bookSessionUC := ucBooking.NewBookSession(schedulingRepo, auditDispatcher, monthCache, logger)
	confirmBookingUC := ucBooking.NewConfirmBooking(schedulingRepo, auditDispatcher, monthCache, logger)
	cancelBookingUC := ucBooking.NewCancelBooking(schedulingRepo, auditDispatcher, monthCache, logger)
	listMyBookingsUC := ucBooking.NewListMyBookings(schedulingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, avatarStore, auditDispatcher)
	courseHandler := handlers.NewCourseHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		listBlocksUC,
		createBlockUC,
		updateBlockUC,
		deleteBlockUC,
		campusLoc,
	)

	sessionHandler := handlers.NewSessionHandler(
		publishSessionUC,
		cancelSessionUC,
		listSessionsUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		bookSessionUC,
		confirmBookingUC,
		cancelBookingUC,
		listMyBookingsUC,
	)

	calendarHandler := handlers.NewCalendarHandler(monthCalendarUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PUBLICA
		// ------------------------------
		public := api.Group("/")
		public.Use(middleware.OptionalAuth(cfg))
		{
			public.GET("/sessions", sessionHandler.Browse)
			public.GET("/tutors/:id/availability", availabilityHandler.ListPublic)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// TUTOR
			// ------------------------------
			tutor := secured.Group("/me")
			tutor.Use(middleware.RequireRole(models.RoleTutor))
			{
				tutor.GET("/availability", availabilityHandler.List)
				tutor.POST("/availability", availabilityHandler.Create)
				tutor.PATCH("/availability/:id", availabilityHandler.Update)
				tutor.DELETE("/availability/:id", availabilityHandler.Delete)

				tutor.GET("/courses", courseHandler.List)
				tutor.POST("/courses", courseHandler.Create)
				tutor.PATCH("/courses/:id", courseHandler.Update)

				tutor.POST("/sessions", sessionHandler.Publish)
				tutor.PATCH("/sessions/:id/cancel", sessionHandler.Cancel)
				tutor.GET("/calendar", calendarHandler.Month)

				tutor.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			}

			// ------------------------------
			// STUDENT
			// ------------------------------
			secured.POST("/sessions/:id/book",
				middleware.RequireRole(models.RoleStudent),
				bookingHandler.Book,
			)

			student := secured.Group("/me")
			student.Use(middleware.RequireRole(models.RoleStudent))
			{
				student.GET("/bookings", bookingHandler.ListMine)
				student.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			}
		}
	}
}
