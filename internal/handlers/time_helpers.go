package handlers

import (
	"time"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/timezone"
)

// resolve o timezone oficial do profissional
func locationFromProfessional(pro *models.Professional) *time.Location {
	if pro != nil {
		return timezone.Location(pro.Timezone)
	}
	return timezone.Location("")
}

func parseDateForProfessional(pro *models.Professional, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromProfessional(pro),
	)
}
