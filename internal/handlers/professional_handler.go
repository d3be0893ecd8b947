package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httpresp"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// ======================================================
// PÚBLICO — busca e perfil
// ======================================================

// GET /api/professionals?city=&specialty=&q=
func (h *ProfessionalHandler) List(c *gin.Context) {
	query := h.db.
		Preload("User").
		Where("active = ?", true)

	if city := strings.TrimSpace(c.Query("city")); city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}

	if specialty := strings.TrimSpace(c.Query("specialty")); specialty != "" {
		query = query.Where("LOWER(specialty) = LOWER(?)", specialty)
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.
			Joins("JOIN users ON users.id = professionals.user_id").
			Where("LOWER(users.name) LIKE ? OR LOWER(specialty) LIKE ? OR LOWER(bio) LIKE ?", like, like, like)
	}

	var pros []models.Professional
	if err := query.Order("professionals.id ASC").Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Não foi possível listar os profissionais.")
		return
	}

	httpresp.List(c, pros)
}

// GET /api/professionals/:id
func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var pro models.Professional
	err := h.db.
		Preload("User").
		Where("id = ? AND active = ?", id, true).
		First(&pro).Error
	if err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var services []models.Service
	h.db.
		Where("professional_id = ? AND active = ?", pro.ID, true).
		Order("id ASC").
		Find(&services)

	c.JSON(http.StatusOK, gin.H{
		"professional": pro,
		"services":     services,
	})
}

// ======================================================
// PROFISSIONAL — edição do próprio perfil
// ======================================================

type UpdateProfessionalRequest struct {
	Bio               *string `json:"bio"`
	Specialty         *string `json:"specialty"`
	City              *string `json:"city"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	Active            *bool   `json:"active"`
}

// PUT /api/professionals/me
func (h *ProfessionalHandler) UpdateMe(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var pro models.Professional
	if err := h.db.Where("user_id = ?", userID).First(&pro).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Perfil profissional não encontrado.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Bio != nil {
		pro.Bio = *req.Bio
	}
	if req.Specialty != nil {
		pro.Specialty = *req.Specialty
	}
	if req.City != nil {
		pro.City = *req.City
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone IANA inválido.")
			return
		}
		pro.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima não pode ser negativa.")
			return
		}
		pro.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Não foi possível atualizar o perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"professional": pro})
}
