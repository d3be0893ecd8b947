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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID         uint
	ProfessionalID uint
	ServiceID      uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	pro, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	// profissional desativado some das buscas e não recebe reserva direta
	if !pro.Active {
		return nil, httperr.ErrBusiness("professional_inactive")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(pro.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := pro.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(pro.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	svc, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// Admissão: todos os blocos cobertos pela duração do serviço
	// precisam estar livres na grade do dia
	slots, err := slotsForDay(ctx, uc.repo, in.ProfessionalID, start, 0)
	if err != nil {
		return nil, err
	}
	if !rangeFree(slots, start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	ap := &models.Appointment{
		UserID:         in.UserID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      svc.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	// O insert é o árbitro final: a constraint de exclusão do store
	// derruba a corrida que passou pela pré-checagem
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		return nil, err
	}

	uc.notifier.NotifyAppointmentCreated(ap)

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		UserID:         &in.UserID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
