package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/config"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/handlers"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// Dependencies são os singletons de infraestrutura montados no main.
type Dependencies struct {
	DB       *gorm.DB
	Config   *config.Config
	Cache    availability.CalendarCache
	Notifier notify.Notifier
	Audit    *audit.Dispatcher
	Clock    timezone.Clock
}

func RegisterRoutes(r *gin.Engine, deps Dependencies, uc *UseCases) {

	db, cfg := deps.DB, deps.Config

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	cabinHandler := handlers.NewCabinHandler(db, deps.Audit, deps.Cache)
	equipmentHandler := handlers.NewEquipmentHandler(db, deps.Audit)

	reservationHandler := handlers.NewReservationHandler(
		uc.CreateReservation,
		uc.ConfirmReservation,
		uc.CancelReservation,
		uc.PayReservation,
		uc.ListReservations,
		uc.GetReservation,
	)

	loanHandler := handlers.NewLoanHandler(
		uc.CreateLoan,
		uc.ReturnLoan,
		uc.MarkLoanLost,
		uc.ListLoans,
	)

	maintenanceHandler := handlers.NewMaintenanceHandler(
		uc.CreateMaintenance,
		uc.Maintenance,
		uc.ListMaintenance,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		uc.CheckAvailability,
		uc.MonthAvailability,
		deps.Clock,
	)

	taskHandler := handlers.NewTaskHandler(uc.ListTasks, uc.UpdateTaskStatus)
	preparationHandler := handlers.NewPreparationHandler(uc.GetPreparation, uc.CompletePreparationItem)
	surveyHandler := handlers.NewSurveyHandler(uc.SubmitSurvey)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	staff := middleware.RequireRoles(actor.RoleAdmin, actor.RoleManager, actor.RoleWorker)
	managers := middleware.RequireRoles(actor.RoleAdmin, actor.RoleManager)
	adminOnly := middleware.RequireRoles(actor.RoleAdmin)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", availabilityHandler.Check)
			publicAPI.GET("/calendar", availabilityHandler.PublicCalendar)
			publicAPI.GET("/cabins", cabinHandler.List)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/reservations", reservationHandler.ListMine)

			secured.GET("/me/notifications", notificationHandler.ListMine)
			secured.PATCH("/me/notifications/read-all", notificationHandler.MarkAllRead)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", staff, reservationHandler.List)
			secured.GET("/reservations/:id", reservationHandler.Get)
			secured.PATCH("/reservations/:id/confirm", adminOnly, reservationHandler.Confirm)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
			secured.POST("/reservations/:id/payment", reservationHandler.Pay)

			secured.GET("/reservations/:id/preparation", staff, preparationHandler.Get)
			secured.PATCH("/reservations/:id/preparation/items/:itemId/complete", staff, preparationHandler.CompleteItem)

			secured.POST("/reservations/:id/survey", surveyHandler.Submit)

			// ------------------------------
			// EMPRÉSTIMOS
			// ------------------------------
			secured.POST("/loans", loanHandler.Create)
			secured.GET("/loans", loanHandler.List)
			secured.PATCH("/loans/:id/return", staff, loanHandler.Return)
			secured.PATCH("/loans/:id/lost", managers, loanHandler.MarkLost)

			// ------------------------------
			// MANUTENÇÃO
			// ------------------------------
			secured.POST("/maintenance", managers, maintenanceHandler.Create)
			secured.GET("/maintenance", staff, maintenanceHandler.List)
			secured.PATCH("/maintenance/:id/start", staff, maintenanceHandler.Start)
			secured.PATCH("/maintenance/:id/complete", staff, maintenanceHandler.Complete)
			secured.PATCH("/maintenance/:id/cancel", managers, maintenanceHandler.Cancel)

			// ------------------------------
			// TAREFAS
			// ------------------------------
			secured.GET("/tasks", staff, taskHandler.List)
			secured.PATCH("/tasks/:id/status", staff, taskHandler.UpdateStatus)

			// ------------------------------
			// CALENDÁRIO / CATÁLOGO
			// ------------------------------
			secured.GET("/calendar", staff, availabilityHandler.StaffCalendar)

			secured.GET("/cabins", cabinHandler.List)
			secured.POST("/cabins", managers, cabinHandler.Create)
			secured.PATCH("/cabins/:id", managers, cabinHandler.Update)

			secured.GET("/equipment", equipmentHandler.List)
			secured.POST("/equipment", managers, equipmentHandler.Create)
			secured.PATCH("/equipment/:id/restock", managers, equipmentHandler.Restock)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.POST("/users/staff", adminOnly, authHandler.CreateStaff)
			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
