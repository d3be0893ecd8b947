package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httpresp"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// GET /api/notifications?unread=true
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	query := h.db.Where("user_id = ?", userID)

	if c.Query("unread") == "true" {
		query = query.Where("read = ?", false)
	}

	var notifications []models.Notification
	err := query.
		Order("id DESC").
		Limit(100).
		Find(&notifications).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Não foi possível listar as notificações.")
		return
	}

	httpresp.List(c, notifications)
}

// PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := h.db.
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_update_notification", "Não foi possível atualizar a notificação.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}

// PATCH /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	err := h.db.
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
	if err != nil {
		httperr.Internal(c, "failed_to_update_notifications", "Não foi possível atualizar as notificações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}
