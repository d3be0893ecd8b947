package reminder

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/notification"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

// Service varre agendamentos ativos das próximas 24h e dispara um
// lembrete único por agendamento (ReminderLog é a trava).
type Service struct {
	db       *gorm.DB
	notifier *notification.Dispatcher
}

func NewService(db *gorm.DB, notifier *notification.Dispatcher) *Service {
	return &Service{db: db, notifier: notifier}
}

func (s *Service) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", s.SendUpcomingReminders); err != nil {
		log.Printf("reminder: failed to schedule: %v", err)
		return
	}

	c.Start()
	log.Println("reminder scheduler started")
}

func (s *Service) SendUpcomingReminders() {
	now := timezone.Now()
	until := now.Add(24 * time.Hour)

	activeStatuses := []string{
		string(domain.StatusScheduled),
		string(domain.StatusConfirmed),
	}

	var appointments []models.Appointment
	err := s.db.
		Preload("User").
		Where("status IN ? AND start_time >= ? AND start_time < ?", activeStatuses, now, until).
		Where(
			"id NOT IN (?)",
			s.db.Model(&models.ReminderLog{}).Select("appointment_id"),
		).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder: query failed: %v", err)
		return
	}

	sent := 0
	for _, ap := range appointments {
		when := ap.StartTime.Format("02/01/2006 15:04")

		enqueued := s.notifier.Dispatch(notification.Event{
			UserID:        ap.UserID,
			AppointmentID: &ap.ID,
			Kind:          "appointment_reminder",
			Title:         "Lembrete de agendamento",
			Body:          "Você tem um atendimento em " + when + ".",
			Phone:         ap.User.Phone,
		})

		// evento descartado fica sem ReminderLog e volta no próximo sweep
		if !enqueued {
			log.Printf("reminder: queue full, appointment %d deferred", ap.ID)
			continue
		}

		entry := models.ReminderLog{
			AppointmentID: ap.ID,
			SentAt:        now,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			log.Printf("reminder: log failed for appointment %d: %v", ap.ID, err)
		}
		sent++
	}

	if sent > 0 {
		log.Printf("reminder: dispatched %d reminder(s)", sent)
	}
}
