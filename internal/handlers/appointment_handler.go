package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httpresp"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	usecase "github.com/Trend-White-Oficial/cuide-se-sub002/internal/usecase/appointment"
)

type AppointmentHandler struct {
	db *gorm.DB

	getAvailability *usecase.GetAvailability
	isSlotAvailable *usecase.IsSlotAvailable
	create          *usecase.CreateAppointment
	reschedule      *usecase.RescheduleAppointment
	updateStatus    *usecase.UpdateAppointmentStatus
	cancel          *usecase.CancelAppointment
	agendaByDate    *usecase.ListAgendaByDate
	agendaByMonth   *usecase.ListAgendaByMonth
	listForClient   *usecase.ListClientAppointments
}

func NewAppointmentHandler(
	db *gorm.DB,
	getAvailability *usecase.GetAvailability,
	isSlotAvailable *usecase.IsSlotAvailable,
	create *usecase.CreateAppointment,
	reschedule *usecase.RescheduleAppointment,
	updateStatus *usecase.UpdateAppointmentStatus,
	cancel *usecase.CancelAppointment,
	agendaByDate *usecase.ListAgendaByDate,
	agendaByMonth *usecase.ListAgendaByMonth,
	listForClient *usecase.ListClientAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:              db,
		getAvailability: getAvailability,
		isSlotAvailable: isSlotAvailable,
		create:          create,
		reschedule:      reschedule,
		updateStatus:    updateStatus,
		cancel:          cancel,
		agendaByDate:    agendaByDate,
		agendaByMonth:   agendaByMonth,
		listForClient:   listForClient,
	}
}

func (h *AppointmentHandler) loadProfessional(c *gin.Context, id uint) (*models.Professional, bool) {
	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return nil, false
	}
	return &pro, true
}

func (h *AppointmentHandler) myProfessional(c *gin.Context) (*models.Professional, bool) {
	userID := c.GetUint(middleware.ContextUserID)

	var pro models.Professional
	if err := h.db.Where("user_id = ?", userID).First(&pro).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Perfil profissional não encontrado.")
		return nil, false
	}
	return &pro, true
}

// ======================================================
// PÚBLICO — disponibilidade
// ======================================================

// GET /api/professionals/:id/availability?date=YYYY-MM-DD
func (h *AppointmentHandler) Availability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pro, ok := h.loadProfessional(c, id)
	if !ok {
		return
	}

	date, err := parseDateForProfessional(pro, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use o formato YYYY-MM-DD no parâmetro 'date'.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: pro.ID,
		Date:           date,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Não foi possível calcular a disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional_id": pro.ID,
		"date":            date.Format("2006-01-02"),
		"slots":           slots,
	})
}

// GET /api/professionals/:id/availability/check?date=YYYY-MM-DD&time=HH:mm
func (h *AppointmentHandler) CheckSlot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pro, ok := h.loadProfessional(c, id)
	if !ok {
		return
	}

	date, err := parseDateForProfessional(pro, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use o formato YYYY-MM-DD no parâmetro 'date'.")
		return
	}

	startHM := c.Query("time")
	if startHM == "" {
		httperr.BadRequest(c, "invalid_time", "Informe o parâmetro 'time' no formato HH:mm.")
		return
	}

	available, err := h.isSlotAvailable.Execute(c.Request.Context(), pro.ID, date, startHM)
	if err != nil {
		httperr.Internal(c, "failed_to_check_slot", "Não foi possível checar o horário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional_id": pro.ID,
		"date":            date.Format("2006-01-02"),
		"time":            startHM,
		"available":       available,
	})
}

// ======================================================
// CLIENTE — ciclo de vida do agendamento
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		UserID:         userID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": ap})
}

// GET /api/appointments — agendamentos do cliente logado
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	appointments, err := h.listForClient.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Não foi possível listar os agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

// PATCH /api/appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), userID, id, req.Date, req.Time)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	to := domain.Status(req.Status)
	if !domain.IsValid(to) {
		httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), userID, id, to)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// PATCH /api/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req) // corpo é opcional

	ap, err := h.cancel.Execute(c.Request.Context(), userID, id, req.Reason)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// ======================================================
// PROFISSIONAL — agenda
// ======================================================

// GET /api/agenda?date=YYYY-MM-DD
func (h *AppointmentHandler) AgendaByDate(c *gin.Context) {
	pro, ok := h.myProfessional(c)
	if !ok {
		return
	}

	date, err := parseDateForProfessional(pro, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use o formato YYYY-MM-DD no parâmetro 'date'.")
		return
	}

	list, err := h.agendaByDate.Execute(c.Request.Context(), pro.ID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Não foi possível carregar a agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date.Format("2006-01-02"),
		"appointments": list,
	})
}

// GET /api/agenda/month?year=YYYY&month=M
func (h *AppointmentHandler) AgendaByMonth(c *gin.Context) {
	pro, ok := h.myProfessional(c)
	if !ok {
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_period", "Informe 'year' e 'month' (1-12) válidos.")
		return
	}

	appointments, err := h.agendaByMonth.Execute(c.Request.Context(), pro.ID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Não foi possível carregar a agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}
