package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/images"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/storage"
)

const (
	avatarMaxBytes = 5 << 20 // 5MB
	avatarMaxDim   = 512
)

type UploadHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewUploadHandler(db *gorm.DB, uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{db: db, uploader: uploader}
}

// POST /api/me/avatar — multipart com campo "file" (JPEG/PNG)
func (h *UploadHandler) Avatar(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_not_configured", "Upload de imagens não está habilitado.")
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie a imagem no campo 'file'.")
		return
	}

	if file.Size > avatarMaxBytes {
		httperr.BadRequest(c, "file_too_large", "A imagem não pode passar de 5MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Não foi possível ler o arquivo enviado.")
		return
	}
	defer src.Close()

	body, err := images.ToWebP(src, avatarMaxDim)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "A imagem precisa ser JPEG ou PNG válido.")
		return
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.NewString())

	url, err := h.uploader.Put(c.Request.Context(), key, body, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Não foi possível enviar a imagem.")
		return
	}

	err = h.db.
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error
	if err != nil {
		httperr.Internal(c, "failed_to_update_user", "Não foi possível salvar o avatar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
