package appointment

import (
	"context"
	"time"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

type ListAgendaByMonth struct {
	repo domain.Repository
}

func NewListAgendaByMonth(repo domain.Repository) *ListAgendaByMonth {
	return &ListAgendaByMonth{repo: repo}
}

func (uc *ListAgendaByMonth) Execute(
	ctx context.Context,
	professionalID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	pro, err := uc.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(pro.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListAppointmentsForPeriod(
		ctx,
		professionalID,
		start,
		end,
	)
}
