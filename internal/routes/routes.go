package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	images *storage.ImageStore,
	log *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalog := cache.NewCatalog(rdb, appointmentRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availability := ucAppointment.NewAvailability(appointmentRepo)
	pricing := ucAppointment.NewPricing(appointmentRepo, catalog)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		availability,
		pricing,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		availability,
		pricing,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentsUC := ucAppointment.NewGetAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		getAppointmentsUC,
	)

	stylistHandler := handlers.NewStylistHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, catalog, images)
	comboHandler := handlers.NewComboHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.GetByID)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.GET("/accounts/:id/appointments", appointmentHandler.ListByAccount)

		// ------------------------------
		// REVIEWS
		// ------------------------------
		api.POST("/appointments/:id/reviews", reviewHandler.Create)
		api.GET("/appointments/:id/reviews", reviewHandler.ListByAppointment)

		// ------------------------------
		// ROSTER + SCHEDULES
		// ------------------------------
		api.GET("/stylists", stylistHandler.List)
		api.POST("/stylists", stylistHandler.Create)
		api.GET("/stylists/:id", stylistHandler.Get)
		api.GET("/stylists/:id/schedules", scheduleHandler.List)
		api.PUT("/stylists/:id/schedules", scheduleHandler.Update)

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)
		api.POST("/services/:id/image", serviceHandler.UploadImage)

		api.GET("/combos", comboHandler.List)
		api.GET("/combos/:id", comboHandler.Get)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
