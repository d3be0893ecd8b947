package appointment

import (
	"context"
	"time"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {
	return slotsForDay(ctx, uc.repo, in.ProfessionalID, in.Date, 0)
}

// slotsForDay monta a grade de slots de 30min do dia: expediente do
// weekday particionado, com pausa e agendamentos ativos marcando os
// blocos como indisponíveis. Sem expediente no dia → grade vazia
// (não é erro); falha do store propaga intacta. excludeID tira um
// agendamento do conjunto ocupado.
func slotsForDay(
	ctx context.Context,
	repo domain.Repository,
	professionalID uint,
	date time.Time,
	excludeID uint,
) ([]domain.TimeSlot, error) {

	weekday := int(date.Weekday())

	wh, err := repo.GetWorkingHours(ctx, professionalID, weekday)
	if err != nil {
		return nil, err
	}
	if wh == nil || !wh.Active {
		return []domain.TimeSlot{}, nil
	}

	dayStart, ok1 := domain.ClockOn(date, wh.StartTime)
	dayEnd, ok2 := domain.ClockOn(date, wh.EndTime)
	if !ok1 || !ok2 || !dayEnd.After(dayStart) {
		return []domain.TimeSlot{}, nil
	}

	var busy []domain.BusyInterval

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		bStart, okS := domain.ClockOn(date, wh.BreakStart)
		bEnd, okE := domain.ClockOn(date, wh.BreakEnd)
		if okS && okE && bEnd.After(bStart) {
			busy = append(busy, domain.BusyInterval{Start: bStart, End: bEnd})
		}
	}

	active, err := repo.ListActiveAppointments(
		ctx,
		professionalID,
		dayStart,
		dayEnd,
		excludeID,
	)
	if err != nil {
		return nil, err
	}

	for _, ap := range active {
		busy = append(busy, domain.BusyInterval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	return domain.BuildSlots(dayStart, dayEnd, busy), nil
}

// rangeFree verifica todos os blocos de 30min cobertos por
// [start,end): cada um precisa existir na grade e estar livre.
func rangeFree(slots []domain.TimeSlot, start, end time.Time) bool {
	step := time.Duration(domain.SlotMinutes) * time.Minute
	for cur := start; cur.Before(end); cur = cur.Add(step) {
		if !domain.SlotAvailable(slots, cur.Format("15:04")) {
			return false
		}
	}
	return true
}
