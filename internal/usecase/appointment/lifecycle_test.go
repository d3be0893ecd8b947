package appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	domain "github.com/Trend-White-Oficial/cuide-se-sub002/internal/domain/appointment"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/models"
)

func seedAppointment(t *testing.T, repo *fakeRepo, hm string, status domain.Status) *models.Appointment {
	t.Helper()

	start, ok := domain.ClockOn(testDay(t), hm)
	if !ok {
		t.Fatalf("horário inválido: %s", hm)
	}

	repo.nextID++
	ap := &models.Appointment{
		ID:             repo.nextID,
		UserID:         5,
		ProfessionalID: 1,
		ServiceID:      1,
		StartTime:      start,
		EndTime:        start.Add(30 * time.Minute),
		Status:         string(status),
	}
	repo.appointments[ap.ID] = ap
	return ap
}

// ======================================================
// UpdateStatus
// ======================================================

func TestUpdateStatusConfirm(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusScheduled)

	notifier := &fakeNotifier{}
	uc := NewUpdateAppointmentStatus(repo, notifier, nil)

	// ator é o cliente dono
	out, err := uc.Execute(context.Background(), 5, ap.ID, domain.StatusConfirmed)
	if err != nil {
		t.Fatal(err)
	}

	if out.Status != string(domain.StatusConfirmed) || out.ConfirmedAt == nil {
		t.Errorf("confirmação não aplicada: %+v", out)
	}
	if len(notifier.changed) != 1 || notifier.changed[0] != "scheduled→confirmed" {
		t.Errorf("notificação errada: %v", notifier.changed)
	}
}

func TestUpdateStatusByProfessional(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusConfirmed)

	uc := NewUpdateAppointmentStatus(repo, &fakeNotifier{}, nil)

	// ator é o usuário do profissional (UserID 10 no fake)
	out, err := uc.Execute(context.Background(), 10, ap.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != string(domain.StatusCompleted) {
		t.Errorf("status deveria ser completed, veio %s", out.Status)
	}
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusScheduled)

	uc := NewUpdateAppointmentStatus(repo, &fakeNotifier{}, nil)

	// scheduled não pula direto para completed
	_, err := uc.Execute(context.Background(), 5, ap.ID, domain.StatusCompleted)
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("esperava invalid_transition, veio %v", err)
	}

	stored := repo.appointments[ap.ID]
	if stored.Status != string(domain.StatusScheduled) {
		t.Errorf("transição rejeitada não pode alterar o status: %s", stored.Status)
	}
}

func TestUpdateStatusThirdPartyDenied(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusScheduled)

	uc := NewUpdateAppointmentStatus(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), 999, ap.ID, domain.StatusConfirmed)
	if !httperr.IsBusiness(err, httperr.CodeNotAuthorized) {
		t.Fatalf("terceiro deveria receber not_authorized, veio %v", err)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()

	uc := NewUpdateAppointmentStatus(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), 5, 42, domain.StatusConfirmed)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("esperava appointment_not_found, veio %v", err)
	}
}

// ======================================================
// Cancel
// ======================================================

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusConfirmed)

	notifier := &fakeNotifier{}
	uc := NewCancelAppointment(repo, notifier, nil)

	out, err := uc.Execute(context.Background(), 5, ap.ID, "imprevisto no trabalho")
	if err != nil {
		t.Fatal(err)
	}

	if out.Status != string(domain.StatusCancelled) || out.CancelledAt == nil {
		t.Errorf("cancelamento não aplicado: %+v", out)
	}
	if !strings.Contains(out.Notes, "imprevisto no trabalho") {
		t.Errorf("motivo não registrado nas notas: %q", out.Notes)
	}
	if len(notifier.changed) != 1 || notifier.changed[0] != "confirmed→cancelled" {
		t.Errorf("notificação errada: %v", notifier.changed)
	}
}

func TestCancelTerminalAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusCompleted)

	uc := NewCancelAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), 5, ap.ID, "")
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("completed não pode ser cancelado, veio %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusScheduled)

	cancel := NewCancelAppointment(repo, &fakeNotifier{}, nil)
	if _, err := cancel.Execute(context.Background(), 5, ap.ID, ""); err != nil {
		t.Fatal(err)
	}

	check := NewIsSlotAvailable(repo)
	free, err := check.Execute(context.Background(), 1, testDay(t), "10:00")
	if err != nil {
		t.Fatal(err)
	}
	if !free {
		t.Error("cancelamento deveria liberar o slot")
	}
}

// ======================================================
// Reschedule
// ======================================================

func TestRescheduleAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusScheduled)

	notifier := &fakeNotifier{}
	uc := NewRescheduleAppointment(repo, notifier, nil)

	out, err := uc.Execute(context.Background(), 5, ap.ID, testDate, "14:00")
	if err != nil {
		t.Fatal(err)
	}

	if out.StartTime.Format("15:04") != "14:00" {
		t.Errorf("novo início errado: %s", out.StartTime.Format("15:04"))
	}
	if len(notifier.rescheduled) != 1 {
		t.Error("notificação de remarcação não disparou")
	}

	// slot antigo liberado, novo ocupado
	check := NewIsSlotAvailable(repo)
	if free, _ := check.Execute(context.Background(), 1, testDay(t), "10:00"); !free {
		t.Error("slot antigo deveria estar livre")
	}
	if free, _ := check.Execute(context.Background(), 1, testDay(t), "14:00"); free {
		t.Error("slot novo deveria estar ocupado")
	}
}

func TestRescheduleToOwnSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusConfirmed)

	uc := NewRescheduleAppointment(repo, &fakeNotifier{}, nil)

	// o próprio agendamento não conta como conflito
	if _, err := uc.Execute(context.Background(), 5, ap.ID, testDate, "10:00"); err != nil {
		t.Fatalf("remarcar para o próprio horário deveria passar: %v", err)
	}
}

func TestRescheduleToTakenSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusScheduled)
	other := seedAppointment(t, repo, "14:00", domain.StatusScheduled)
	other.UserID = 6
	repo.appointments[other.ID] = other

	uc := NewRescheduleAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), 5, ap.ID, testDate, "14:00")
	if !httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
		t.Fatalf("esperava slot_unavailable, veio %v", err)
	}

	stored := repo.appointments[ap.ID]
	if stored.StartTime.Format("15:04") != "10:00" {
		t.Errorf("remarcação rejeitada não pode mover o agendamento: %s", stored.StartTime.Format("15:04"))
	}
}

func TestRescheduleCancelledAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusCancelled)

	uc := NewRescheduleAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), 5, ap.ID, testDate, "14:00")
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("agendamento inativo não remarca, veio %v", err)
	}
}

func TestRescheduleThirdPartyDenied(t *testing.T) {
	repo := newFakeRepo()
	repo.openWeekday(2, "09:00", "17:00")
	ap := seedAppointment(t, repo, "10:00", domain.StatusScheduled)

	uc := NewRescheduleAppointment(repo, &fakeNotifier{}, nil)

	_, err := uc.Execute(context.Background(), 999, ap.ID, testDate, "14:00")
	if !httperr.IsBusiness(err, httperr.CodeNotAuthorized) {
		t.Fatalf("terceiro deveria receber not_authorized, veio %v", err)
	}
}
