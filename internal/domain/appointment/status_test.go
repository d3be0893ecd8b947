package appointment

import (
	"testing"
	"time"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

func TestCanTransitionTable(t *testing.T) {
	all := []Status{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled}

	allowed := map[Status]map[Status]bool{
		StatusScheduled: {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to)
			if allowed[from][to] {
				if err != nil {
					t.Errorf("%s → %s deveria ser permitido: %v", from, to, err)
				}
				continue
			}
			if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
				t.Errorf("%s → %s deveria falhar com invalid_transition", from, to)
			}
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if err := CanTransition(StatusScheduled, Status("paused")); err == nil {
		t.Error("status desconhecido deveria falhar")
	}
}

func TestTransitionSetsTimestamps(t *testing.T) {
	now := time.Date(2030, 3, 12, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := Transition(ap, StatusConfirmed, now); err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(StatusConfirmed) || ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Errorf("confirmação não aplicada: %+v", ap)
	}

	if err := Transition(ap, StatusCompleted, now); err != nil {
		t.Fatal(err)
	}
	if ap.CompletedAt == nil {
		t.Error("completed_at não preenchido")
	}
}

func TestTransitionTerminalIsFinal(t *testing.T) {
	now := time.Date(2030, 3, 12, 10, 0, 0, 0, time.UTC)

	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		ap := &models.Appointment{Status: string(terminal)}

		for _, to := range []Status{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled} {
			if err := Transition(ap, to, now); err == nil {
				t.Errorf("%s → %s deveria ser bloqueado", terminal, to)
			}
		}
		if ap.Status != string(terminal) {
			t.Errorf("status terminal foi alterado para %s", ap.Status)
		}
	}
}

func TestIsActive(t *testing.T) {
	if !IsActive(StatusScheduled) || !IsActive(StatusConfirmed) {
		t.Error("scheduled e confirmed ocupam o slot")
	}
	if IsActive(StatusCompleted) || IsActive(StatusCancelled) {
		t.Error("terminais não ocupam o slot")
	}
}
