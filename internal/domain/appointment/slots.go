package appointment

import "time"

// Granularidade única de slot da plataforma. Todos os call sites
// particionam o expediente em blocos de 30 minutos.
const SlotMinutes = 30

type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// ClockOn posiciona um horário "15:04" no dia informado
func ClockOn(day time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// Overlaps compara intervalos semiabertos [aStart,aEnd) x [bStart,bEnd)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BuildSlots particiona [dayStart,dayEnd) em blocos de SlotMinutes e marca
// cada bloco como indisponível quando cruza algum intervalo ocupado.
// Função pura: mesma entrada, mesma saída, sem estado escondido.
// Um bloco parcial no fim do expediente é descartado.
func BuildSlots(dayStart, dayEnd time.Time, busy []BusyInterval) []TimeSlot {
	if !dayEnd.After(dayStart) {
		return []TimeSlot{}
	}

	step := time.Duration(SlotMinutes) * time.Minute
	slots := make([]TimeSlot, 0, int(dayEnd.Sub(dayStart)/step))

	for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
		slotStart := cur
		slotEnd := cur.Add(step)

		available := true
		for _, b := range busy {
			if Overlaps(slotStart, slotEnd, b.Start, b.End) {
				available = false
				break
			}
		}

		slots = append(slots, TimeSlot{
			Start:     slotStart.Format("15:04"),
			End:       slotEnd.Format("15:04"),
			Available: available,
		})
	}

	return slots
}

// SlotAvailable procura um slot com o horário de início exato e livre
func SlotAvailable(slots []TimeSlot, start string) bool {
	for _, s := range slots {
		if s.Start == start {
			return s.Available
		}
	}
	return false
}
