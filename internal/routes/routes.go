package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookeasy-app/booking-api/internal/audit"
	"github.com/bookeasy-app/booking-api/internal/config"
	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/handlers"
	"github.com/bookeasy-app/booking-api/internal/identity"
	infraRepo "github.com/bookeasy-app/booking-api/internal/infra/repository"
	"github.com/bookeasy-app/booking-api/internal/middleware"
	ucBooking "github.com/bookeasy-app/booking-api/internal/usecase/booking"
	"github.com/bookeasy-app/booking-api/internal/wizard"
)

// Deps carries the process-wide collaborators main wires up.
type Deps struct {
	Scheduler    domain.Scheduler
	Provider     identity.Provider
	SessionStore wizard.Store
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	hours := domain.Hours{
		Open:     cfg.OpenHour,
		Close:    cfg.CloseHour,
		Interval: time.Duration(cfg.SlotIntervalMin) * time.Minute,
	}

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	listServicesUC := ucBooking.NewListServices(deps.Scheduler)

	availabilityUC := ucBooking.NewGetAvailability(
		deps.Scheduler,
		hours,
		cfg.DateWindowDays,
	)

	recordConfirmedUC := ucBooking.NewRecordConfirmed(
		bookingRepo,
		auditDispatcher,
	)

	listMyBookingsUC := ucBooking.NewListMyBookings(bookingRepo)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		deps.Scheduler,
		auditDispatcher,
	)

	// ======================================================
	// 🧙 WIZARD SESSIONS
	// ======================================================
	manager := wizard.NewManager(
		deps.SessionStore,
		deps.Scheduler,
		availabilityUC,
		deps.Provider,
		wizard.Options{
			WindowDays:    cfg.DateWindowDays,
			SubmitTimeout: cfg.SubmitTimeout,
		},
		cfg.SessionTTL,
	)

	manager.OnConfirmed(func(ctx context.Context, userID string, result *domain.SubmittedBooking) {
		// mirroring is best effort, the provider already accepted the booking
		_, _ = recordConfirmedUC.Execute(ctx, userID, result)
	})

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.Provider, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler(deps.Provider)
	catalogHandler := handlers.NewCatalogHandler(listServicesUC)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC, listServicesUC)
	wizardHandler := handlers.NewWizardHandler(manager, listServicesUC)
	bookingsHandler := handlers.NewBookingsHandler(listMyBookingsUC, cancelBookingUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// 🔐 PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services", catalogHandler.ListServices)

			secured.GET("/availability/dates", availabilityHandler.ListDates)
			secured.GET("/availability/slots", availabilityHandler.ListSlots)

			// ------------------------------
			// WIZARD
			// ------------------------------
			secured.POST("/wizard", wizardHandler.Start)
			secured.GET("/wizard/:id", wizardHandler.GetState)
			secured.POST("/wizard/:id/service", wizardHandler.SelectService)
			secured.POST("/wizard/:id/date", wizardHandler.SelectDate)
			secured.POST("/wizard/:id/slots/refresh", wizardHandler.RefreshSlots)
			secured.POST("/wizard/:id/time", wizardHandler.SelectTime)
			secured.POST("/wizard/:id/confirm", wizardHandler.Confirm)
			secured.POST("/wizard/:id/cancel", wizardHandler.Cancel)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingsHandler.List)
			secured.PATCH("/me/bookings/:id/cancel", bookingsHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
