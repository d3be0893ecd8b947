package models

import "time"

// Registro de lembrete enviado, evita duplicar no sweep do cron
type ReminderLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"uniqueIndex" json:"appointment_id"`
	SentAt        time.Time `json:"sent_at"`
}
