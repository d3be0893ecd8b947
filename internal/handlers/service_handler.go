package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) professionalOf(c *gin.Context) (*models.Professional, bool) {
	userID := c.GetUint(middleware.ContextUserID)

	var pro models.Professional
	if err := h.db.Where("user_id = ?", userID).First(&pro).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Perfil profissional não encontrado.")
		return nil, false
	}
	return &pro, true
}

// ======================================================
// PÚBLICO
// ======================================================

// GET /api/professionals/:id/services
func (h *ServiceHandler) ListByProfessional(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var services []models.Service
	err := h.db.
		Where("professional_id = ? AND active = ?", id, true).
		Order("id ASC").
		Find(&services).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Não foi possível listar os serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ======================================================
// PROFISSIONAL — catálogo próprio
// ======================================================

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
}

// GET /api/services
func (h *ServiceHandler) ListMine(c *gin.Context) {
	pro, ok := h.professionalOf(c)
	if !ok {
		return
	}

	var services []models.Service
	err := h.db.
		Where("professional_id = ?", pro.ID).
		Order("id ASC").
		Find(&services).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Não foi possível listar os serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// POST /api/services
func (h *ServiceHandler) Create(c *gin.Context) {
	pro, ok := h.professionalOf(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		ProfessionalID: pro.ID,
		Name:           req.Name,
		Description:    req.Description,
		DurationMin:    req.DurationMin,
		Price:          req.Price,
		Category:       req.Category,
		Active:         true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Não foi possível criar o serviço.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// PUT /api/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	pro, ok := h.professionalOf(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var svc models.Service
	err := h.db.
		Where("id = ? AND professional_id = ?", id, pro.ID).
		First(&svc).Error
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price
	svc.Category = req.Category

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Não foi possível atualizar o serviço.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DELETE /api/services/:id — desativa, mantém histórico de agendamentos
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	pro, ok := h.professionalOf(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := h.db.
		Model(&models.Service{}).
		Where("id = ? AND professional_id = ?", id, pro.ID).
		Update("active", false)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_deactivate_service", "Não foi possível desativar o serviço.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deactivated": true})
}
