package appointment

import (
	"context"
	"time"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/dto"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

type ListAgendaByDate struct {
	repo domain.Repository
}

func NewListAgendaByDate(repo domain.Repository) *ListAgendaByDate {
	return &ListAgendaByDate{repo: repo}
}

func (uc *ListAgendaByDate) Execute(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	pro, err := uc.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(pro.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.User.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
