package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/middleware"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingHoursEntry struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`
}

type PutWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required"`
}

func (h *WorkingHoursHandler) professionalOf(c *gin.Context) (*models.Professional, bool) {
	userID := c.GetUint(middleware.ContextUserID)

	var pro models.Professional
	if err := h.db.Where("user_id = ?", userID).First(&pro).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Perfil profissional não encontrado.")
		return nil, false
	}
	return &pro, true
}

// GET /api/working-hours
func (h *WorkingHoursHandler) List(c *gin.Context) {
	pro, ok := h.professionalOf(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	err := h.db.
		Where("professional_id = ?", pro.ID).
		Order("weekday ASC").
		Find(&hours).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "Não foi possível carregar o expediente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"working_hours": hours})
}

// PUT /api/working-hours — upsert por weekday
func (h *WorkingHoursHandler) Put(c *gin.Context) {
	pro, ok := h.professionalOf(c)
	if !ok {
		return
	}

	var req PutWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, e := range req.Entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Weekday precisa estar entre 0 (domingo) e 6 (sábado).")
			return
		}

		if !e.Active {
			continue
		}

		start, okS := parseClock(e.StartTime)
		end, okE := parseClock(e.EndTime)
		if !okS || !okE || !end.After(start) {
			httperr.BadRequest(c, "invalid_window", "Expediente precisa de início e fim válidos, com fim após o início.")
			return
		}

		// pausa é opcional, mas quando vem precisa caber no expediente
		if e.BreakStart != "" || e.BreakEnd != "" {
			bStart, okBS := parseClock(e.BreakStart)
			bEnd, okBE := parseClock(e.BreakEnd)
			if !okBS || !okBE || !bEnd.After(bStart) || bStart.Before(start) || bEnd.After(end) {
				httperr.BadRequest(c, "invalid_break", "Pausa precisa ser um intervalo válido dentro do expediente.")
				return
			}
		}
	}

	var saved []models.WorkingHours

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, e := range req.Entries {
			var wh models.WorkingHours
			err := tx.
				Where("professional_id = ? AND weekday = ?", pro.ID, e.Weekday).
				First(&wh).Error

			if err == gorm.ErrRecordNotFound {
				wh = models.WorkingHours{
					ProfessionalID: pro.ID,
					Weekday:        e.Weekday,
				}
			} else if err != nil {
				return err
			}

			wh.StartTime = e.StartTime
			wh.EndTime = e.EndTime
			wh.BreakStart = e.BreakStart
			wh.BreakEnd = e.BreakEnd
			wh.Active = e.Active

			if err := tx.Save(&wh).Error; err != nil {
				return err
			}

			saved = append(saved, wh)
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Não foi possível salvar o expediente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"working_hours": saved})
}

func parseClock(hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	return t, err == nil
}
