package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/audit"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/config"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/handlers"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/infra/repository"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/notification"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/payments"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/storage"
	usecase "github.com/Trend-White-Oficial/cuide-se-sub002/internal/usecase/appointment"
)

// Setup monta toda a árvore de dependências e registra as rotas.
// Devolve o dispatcher de notificações para o scheduler de lembretes
// reutilizar o mesmo pipeline.
func Setup(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) *notification.Dispatcher {

	r.Use(middleware.CORSMiddleware())

	// --------- infra ---------

	repo := repository.NewAppointmentGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	sms := notification.NewSMSSender(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFrom,
	)
	notifDispatcher := notification.NewDispatcher(db, rdb, sms)
	notifier := notification.NewAppointmentNotifier(db, notifDispatcher)

	registry := payments.NewRegistry()
	if mp := payments.NewMercadoPago(cfg.MercadoPagoToken); mp != nil {
		registry.Register(payments.GatewayMercadoPago, mp)
	}
	if st := payments.NewStripe(cfg.StripeSecretKey); st != nil {
		registry.Register(payments.GatewayStripe, st)
	}

	uploader := storage.NewUploader(cfg)

	// --------- use cases ---------

	getAvailability := usecase.NewGetAvailability(repo)
	isSlotAvailable := usecase.NewIsSlotAvailable(repo)
	create := usecase.NewCreateAppointment(repo, notifier, auditDispatcher)
	reschedule := usecase.NewRescheduleAppointment(repo, notifier, auditDispatcher)
	updateStatus := usecase.NewUpdateAppointmentStatus(repo, notifier, auditDispatcher)
	cancel := usecase.NewCancelAppointment(repo, notifier, auditDispatcher)
	agendaByDate := usecase.NewListAgendaByDate(repo)
	agendaByMonth := usecase.NewListAgendaByMonth(repo)
	listForClient := usecase.NewListClientAppointments(repo)

	// --------- handlers ---------

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	proHandler := handlers.NewProfessionalHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	whHandler := handlers.NewWorkingHoursHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, registry)
	notifHandler := handlers.NewNotificationHandler(db)
	uploadHandler := handlers.NewUploadHandler(db, uploader)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		getAvailability,
		isSlotAvailable,
		create,
		reschedule,
		updateStatus,
		cancel,
		agendaByDate,
		agendaByMonth,
		listForClient,
	)

	api := r.Group("/api")

	// --------- rotas públicas ---------

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/professionals", proHandler.List)
	api.GET("/professionals/:id", proHandler.Get)
	api.GET("/professionals/:id/services", serviceHandler.ListByProfessional)
	api.GET("/professionals/:id/availability", appointmentHandler.Availability)
	api.GET("/professionals/:id/availability/check", appointmentHandler.CheckSlot)

	// --------- rotas autenticadas ---------

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(cfg))

	auth.GET("/me", meHandler.Get)
	auth.PUT("/me", meHandler.Update)
	auth.POST("/me/avatar", uploadHandler.Avatar)

	auth.GET("/notifications", notifHandler.List)
	auth.PATCH("/notifications/read-all", notifHandler.MarkAllRead)
	auth.PATCH("/notifications/:id/read", notifHandler.MarkRead)

	// ciclo de vida do agendamento — cliente cria, as mutações
	// seguintes valem para as duas pontas (autorização no use case)
	auth.POST("/appointments", appointmentHandler.Create)
	auth.GET("/appointments", appointmentHandler.ListMine)
	auth.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
	auth.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
	auth.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

	auth.POST("/appointments/:id/checkout", paymentHandler.Checkout)
	auth.GET("/appointments/:id/payments", paymentHandler.ListByAppointment)

	// --------- rotas exclusivas do profissional ---------

	pro := auth.Group("/")
	pro.Use(middleware.RequireRole(models.RoleProfessional))

	pro.PUT("/professionals/me", proHandler.UpdateMe)

	pro.GET("/services", serviceHandler.ListMine)
	pro.POST("/services", serviceHandler.Create)
	pro.PUT("/services/:id", serviceHandler.Update)
	pro.DELETE("/services/:id", serviceHandler.Deactivate)

	pro.GET("/working-hours", whHandler.List)
	pro.PUT("/working-hours", whHandler.Put)

	pro.GET("/agenda", appointmentHandler.AgendaByDate)
	pro.GET("/agenda/month", appointmentHandler.AgendaByMonth)

	return notifDispatcher
}
