package appointment

import (
	"context"
	"time"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
)

// IsSlotAvailable é a checagem de admissão antes de criar um
// agendamento: o slot de início existe na grade do dia e está livre.
type IsSlotAvailable struct {
	repo domain.Repository
}

func NewIsSlotAvailable(repo domain.Repository) *IsSlotAvailable {
	return &IsSlotAvailable{repo: repo}
}

func (uc *IsSlotAvailable) Execute(
	ctx context.Context,
	professionalID uint,
	date time.Time,
	startHM string,
) (bool, error) {

	slots, err := slotsForDay(ctx, uc.repo, professionalID, date, 0)
	if err != nil {
		return false, err
	}

	return domain.SlotAvailable(slots, startHM), nil
}
