package appointment

import (
	"context"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/audit"
	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

// CancelAppointment é açúcar sobre a transição para cancelled que
// também grava o motivo livre nas notas.
type CancelAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorUserID uint,
	appointmentID uint,
	reason string,
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
	if err := domain.Transition(ap, domain.StatusCancelled, now); err != nil {
		return nil, err
	}

	if reason != "" {
		if ap.Notes != "" {
			ap.Notes += " | "
		}
		ap.Notes += "cancelamento: " + reason
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.NotifyAppointmentStatusChanged(ap, from, domain.StatusCancelled)

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: ap.ProfessionalID,
		UserID:         &actorUserID,
		Action:         "appointment_cancelled",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
