package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) Get(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	resp := gin.H{"user": user}

	if user.Role == models.RoleProfessional {
		var pro models.Professional
		if err := h.db.Where("user_id = ?", user.ID).First(&pro).Error; err == nil {
			resp["professional"] = pro
		}
	}

	c.JSON(http.StatusOK, resp)
}

type UpdateMeRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *MeHandler) Update(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Não foi possível atualizar o perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
