package appointment

import "time"

type AvailabilityInput struct {
	ProfessionalID uint
	Date           time.Time
}

// TimeSlot é derivado, nunca persistido: um intervalo fixo do dia
// com a marcação de disponibilidade. Calculado a cada consulta.
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}
