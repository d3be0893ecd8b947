package appointment

import (
	"time"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

// IsActive diz se o agendamento ainda ocupa o slot
func IsActive(s Status) bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transições
// ===============================

// Tabela única de transições permitidas. completed e cancelled
// são terminais.
var transitions = map[Status]map[Status]bool{
	StatusScheduled: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCancelled: true,
	},
}

// CanTransition valida a mudança de status contra a tabela
func CanTransition(from, to Status) error {
	if !IsValid(to) || !transitions[from][to] {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

// Transition aplica a mudança de status e os timestamps do ciclo de vida
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}

	return nil
}
