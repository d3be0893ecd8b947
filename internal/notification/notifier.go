package notification

import (
	"log"

	"gorm.io/gorm"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

// AppointmentNotifier traduz mudanças de agendamento em eventos de
// notificação para os dois lados (cliente e profissional).
type AppointmentNotifier struct {
	db *gorm.DB
	d  *Dispatcher
}

func NewAppointmentNotifier(db *gorm.DB, d *Dispatcher) *AppointmentNotifier {
	return &AppointmentNotifier{db: db, d: d}
}

func (n *AppointmentNotifier) NotifyAppointmentCreated(ap *models.Appointment) {
	when := ap.StartTime.Format("02/01/2006 15:04")

	n.toClient(ap, Event{
		Kind:  "appointment_created",
		Title: "Agendamento criado",
		Body:  "Seu agendamento para " + when + " foi registrado.",
	})

	n.toProfessional(ap, Event{
		Kind:  "appointment_created",
		Title: "Novo agendamento",
		Body:  "Você recebeu um novo agendamento para " + when + ".",
	})
}

func (n *AppointmentNotifier) NotifyAppointmentRescheduled(ap *models.Appointment) {
	when := ap.StartTime.Format("02/01/2006 15:04")

	n.toClient(ap, Event{
		Kind:  "appointment_rescheduled",
		Title: "Agendamento remarcado",
		Body:  "Seu agendamento foi remarcado para " + when + ".",
	})

	n.toProfessional(ap, Event{
		Kind:  "appointment_rescheduled",
		Title: "Agendamento remarcado",
		Body:  "Um agendamento foi remarcado para " + when + ".",
	})
}

func (n *AppointmentNotifier) NotifyAppointmentStatusChanged(
	ap *models.Appointment,
	from domain.Status,
	to domain.Status,
) {
	title, body := statusMessage(to, ap)
	if title == "" {
		return
	}

	kind := "appointment_" + string(to)

	n.toClient(ap, Event{Kind: kind, Title: title, Body: body})
	n.toProfessional(ap, Event{Kind: kind, Title: title, Body: body})
}

func statusMessage(to domain.Status, ap *models.Appointment) (string, string) {
	when := ap.StartTime.Format("02/01/2006 15:04")

	switch to {
	case domain.StatusConfirmed:
		return "Agendamento confirmado", "O agendamento de " + when + " foi confirmado."
	case domain.StatusCancelled:
		return "Agendamento cancelado", "O agendamento de " + when + " foi cancelado."
	case domain.StatusCompleted:
		return "Atendimento concluído", "O atendimento de " + when + " foi concluído."
	}

	return "", ""
}

func (n *AppointmentNotifier) toClient(ap *models.Appointment, ev Event) {
	var user models.User
	if err := n.db.First(&user, ap.UserID).Error; err != nil {
		log.Println("notifier: client lookup failed:", err)
		return
	}

	ev.UserID = user.ID
	ev.AppointmentID = &ap.ID
	ev.Phone = user.Phone
	n.d.Dispatch(ev)
}

func (n *AppointmentNotifier) toProfessional(ap *models.Appointment, ev Event) {
	var pro models.Professional
	if err := n.db.First(&pro, ap.ProfessionalID).Error; err != nil {
		log.Println("notifier: professional lookup failed:", err)
		return
	}

	var user models.User
	if err := n.db.First(&user, pro.UserID).Error; err != nil {
		log.Println("notifier: professional user lookup failed:", err)
		return
	}

	ev.UserID = user.ID
	ev.AppointmentID = &ap.ID
	ev.Phone = user.Phone
	n.d.Dispatch(ev)
}

// Compile-time check
var _ domain.Notifier = (*AppointmentNotifier)(nil)
