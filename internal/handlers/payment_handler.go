package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/payments"
)

type PaymentHandler struct {
	db       *gorm.DB
	registry *payments.Registry
}

func NewPaymentHandler(db *gorm.DB, registry *payments.Registry) *PaymentHandler {
	return &PaymentHandler{db: db, registry: registry}
}

type CheckoutRequest struct {
	Gateway string `json:"gateway"` // mercadopago (default) ou stripe
}

// POST /api/appointments/:id/checkout
func (h *PaymentHandler) Checkout(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CheckoutRequest
	_ = c.ShouldBindJSON(&req)

	var ap models.Appointment
	err := h.db.
		Preload("Service").
		Preload("Professional.User").
		First(&ap, id).Error
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if ap.UserID != userID {
		httperr.Forbidden(c, httperr.CodeNotAuthorized, "Você não tem permissão sobre este agendamento.")
		return
	}

	// só agendamento ativo gera cobrança
	if !domain.IsActive(domain.Status(ap.Status)) {
		httperr.Conflict(c, httperr.CodeInvalidTransition, "O agendamento não está ativo para pagamento.")
		return
	}

	gateway, err := h.registry.Get(req.Gateway)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	payment := models.Payment{
		AppointmentID: ap.ID,
		Reference:     uuid.NewString(),
		Gateway:       req.Gateway,
		Amount:        ap.Service.Price,
		Currency:      "BRL",
		Status:        "pending",
	}
	if payment.Gateway == "" {
		payment.Gateway = payments.GatewayMercadoPago
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Não foi possível registrar o pagamento.")
		return
	}

	title := fmt.Sprintf(
		"%s com %s",
		ap.Service.Name,
		ap.Professional.User.Name,
	)

	checkout, err := gateway.CreateCheckout(
		c.Request.Context(),
		payment.Reference,
		title,
		payment.Amount,
		payment.Currency,
	)
	if err != nil {
		h.db.Model(&payment).Update("status", "failed")
		httperr.Internal(c, "gateway_error", "O gateway de pagamento falhou. Tente novamente.")
		return
	}

	payment.ExternalID = checkout.ExternalID
	payment.CheckoutURL = checkout.CheckoutURL

	if err := h.db.Save(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "Não foi possível registrar o checkout.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GET /api/appointments/:id/payments
func (h *PaymentHandler) ListByAppointment(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if ap.UserID != userID {
		var pro models.Professional
		err := h.db.Where("user_id = ?", userID).First(&pro).Error
		if err != nil || pro.ID != ap.ProfessionalID {
			httperr.Forbidden(c, httperr.CodeNotAuthorized, "Você não tem permissão sobre este agendamento.")
			return
		}
	}

	var list []models.Payment
	if err := h.db.Where("appointment_id = ?", ap.ID).Order("id DESC").Find(&list).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Não foi possível listar os pagamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": list})
}
