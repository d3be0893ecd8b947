package appointment

import "github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"

// Notifier é fire-and-forget: falha de notificação nunca
// desfaz a mutação de agendamento que a disparou.
type Notifier interface {
	NotifyAppointmentCreated(ap *models.Appointment)

	NotifyAppointmentRescheduled(ap *models.Appointment)

	NotifyAppointmentStatusChanged(
		ap *models.Appointment,
		from Status,
		to Status,
	)
}
