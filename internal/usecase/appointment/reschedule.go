package appointment

import (
	"context"
	"time"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/audit"
	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

type RescheduleAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actorUserID uint,
	appointmentID uint,
	newDate string, // YYYY-MM-DD
	newTime string, // HH:mm
) (*models.Appointment, error) {

	ap, err := loadAuthorized(ctx, uc.repo, actorUserID, appointmentID)
	if err != nil {
		return nil, err
	}

	// Só agendamento ativo muda de horário
	if !domain.IsActive(domain.Status(ap.Status)) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	pro, err := uc.repo.GetProfessionalByID(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		newDate+" "+newTime,
		timezone.Location(pro.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Duração re-derivada do serviço original
	svc, err := uc.repo.GetService(ctx, ap.ProfessionalID, ap.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// Grade do novo dia sem o próprio agendamento no conjunto ocupado
	slots, err := slotsForDay(ctx, uc.repo, ap.ProfessionalID, start, ap.ID)
	if err != nil {
		return nil, err
	}
	if !rangeFree(slots, start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	ap.StartTime = start
	ap.EndTime = end

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		return nil, err
	}

	uc.notifier.NotifyAppointmentRescheduled(ap)

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: ap.ProfessionalID,
		UserID:         &actorUserID,
		Action:         "appointment_rescheduled",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
