package appointment

import (
	"context"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/audit"
	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

type UpdateAppointmentStatus struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	actorUserID uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	ap, err := loadAuthorized(ctx, uc.repo, actorUserID, appointmentID)
	if err != nil {
		return nil, err
	}

	pro, err := uc.repo.GetProfessionalByID(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, err
	}

	from := domain.Status(ap.Status)

	now := timezone.NowIn(pro.Timezone)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.NotifyAppointmentStatusChanged(ap, from, to)

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: ap.ProfessionalID,
		UserID:         &actorUserID,
		Action:         "appointment_" + string(to),
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}

// loadAuthorized carrega o agendamento e valida que o ator é o
// cliente dono ou o profissional da agenda. Terceiros → not_authorized.
func loadAuthorized(
	ctx context.Context,
	repo domain.Repository,
	actorUserID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.UserID == actorUserID {
		return ap, nil
	}

	pro, err := repo.GetProfessionalByUserID(ctx, actorUserID)
	if err == nil && pro != nil && pro.ID == ap.ProfessionalID {
		return ap, nil
	}

	return nil, httperr.ErrBusiness(httperr.CodeNotAuthorized)
}
